package m68k

// MC68000Table is the base MC68000 instruction encoding table, ordered
// most-specific first: fully fixed encodings, then encodings with a few
// open fields, then the wide group encodings that overlap them. The
// order is load-bearing; a new rule inserted after a group that covers
// it will never win (see Matcher.Shadowed).
//
// Entries must not be modified at runtime.
var MC68000Table = []Rule{
	// Fully fixed encodings
	{"ORItoCCR", "0000000000111100"},
	{"ORItoSR", "0000000001111100"},
	{"ANDItoCCR", "0000001000111100"},
	{"ANDItoSR", "0000001001111100"},
	{"EORItoCCR", "0000101000111100"},
	{"EORItoSR", "0000101001111100"},
	{"ILLEGAL", "0100101011111100"},
	{"RESET", "0100111001110000"},
	{"NOP", "0100111001110001"},
	{"STOP", "0100111001110010"},
	{"RTE", "0100111001110011"},
	{"RTS", "0100111001110101"},
	{"TRAPV", "0100111001110110"},
	{"RTR", "0100111001110111"},

	// Single register field
	{"SWAP", "0100100001000xxx"},
	{"LINK", "0100111001010xxx"},
	{"UNLK", "0100111001011xxx"},
	{"EXTw", "0100100010000xxx"},
	{"EXTl", "0100100011000xxx"},
	{"TRAP", "010011100100xxxx"},
	{"MOVEUSP", "010011100110xxxx"},

	// Bit operations, register and memory forms
	{"BTSTr", "000010000000xxxx"},
	{"BCHGr", "000010000100xxxx"},
	{"BCLRr", "000010001000xxxx"},
	{"BSETr", "000010001100xxxx"},
	{"BTSTm", "0000100000xxxxxx"},
	{"BCHGm", "0000100001xxxxxx"},
	{"BCLRm", "0000100010xxxxxx"},
	{"BSETm", "0000100011xxxxxx"},

	// Single effective-address operand
	{"MOVEfromSR", "0100000011xxxxxx"},
	{"MOVEtoCCR", "0100010011xxxxxx"},
	{"MOVEtoSR", "0100011011xxxxxx"},
	{"NBCD", "0100100000xxxxxx"},
	{"PEA", "0100100001xxxxxx"},
	{"TAS", "0100101011xxxxxx"},
	{"JSR", "0100111010xxxxxx"},
	{"JMP", "0100111011xxxxxx"},

	// Memory shifts and rotates (one bit per access)
	{"ASRm", "1110000011xxxxxx"},
	{"LSRm", "1110001011xxxxxx"},
	{"ROXRm", "1110010011xxxxxx"},
	{"RORm", "1110011011xxxxxx"},
	{"ASLm", "1110000111xxxxxx"},
	{"LSLm", "1110001111xxxxxx"},
	{"ROXLm", "1110010111xxxxxx"},
	{"ROLm", "1110011111xxxxxx"},

	// Immediate arithmetic and logic
	{"ORIb", "0000000000xxxxxx"},
	{"ORIw", "0000000001xxxxxx"},
	{"ORIl", "0000000010xxxxxx"},
	{"ANDIb", "0000001000xxxxxx"},
	{"ANDIw", "0000001001xxxxxx"},
	{"ANDIl", "0000001010xxxxxx"},
	{"SUBIb", "0000010000xxxxxx"},
	{"SUBIw", "0000010001xxxxxx"},
	{"SUBIl", "0000010010xxxxxx"},
	{"ADDIb", "0000011000xxxxxx"},
	{"ADDIw", "0000011001xxxxxx"},
	{"ADDIl", "0000011010xxxxxx"},
	{"EORIb", "0000101000xxxxxx"},
	{"EORIw", "0000101001xxxxxx"},
	{"EORIl", "0000101010xxxxxx"},
	{"CMPIb", "0000110000xxxxxx"},
	{"CMPIw", "0000110001xxxxxx"},
	{"CMPIl", "0000110010xxxxxx"},

	// Single-operand arithmetic and logic
	{"CLRb", "0100001000xxxxxx"},
	{"CLRw", "0100001001xxxxxx"},
	{"CLRl", "0100001010xxxxxx"},
	{"NEGb", "0100010000xxxxxx"},
	{"NEGw", "0100010001xxxxxx"},
	{"NEGl", "0100010010xxxxxx"},
	{"NOTb", "0100011000xxxxxx"},
	{"NOTw", "0100011001xxxxxx"},
	{"NOTl", "0100011010xxxxxx"},
	{"TSTb", "0100101000xxxxxx"},
	{"TSTw", "0100101001xxxxxx"},
	{"TSTl", "0100101010xxxxxx"},

	// Two register fields with fixed mode bits
	{"CMPMb", "1011xxx100001xxx"},
	{"CMPMw", "1011xxx101001xxx"},
	{"CMPMl", "1011xxx110001xxx"},
	{"MOVEPw", "0000xxx1x0001xxx"},
	{"MOVEPl", "0000xxx1x1001xxx"},
	{"DBcc", "0101xxxx11001xxx"},
	{"SBCD", "1000xxx10000xxxx"},
	{"ABCD", "1100xxx10000xxxx"},
	// Encoding: 1100 XXX1 opmode(5) YYY; opmode 01000 data/data,
	// 01001 addr/addr, 10001 data/addr
	{"EXGdd", "1100xxx101000xxx"},
	{"EXGaa", "1100xxx101001xxx"},
	{"EXGda", "1100xxx110001xxx"},
	{"SUBXb", "1001xxx10000xxxx"},
	{"SUBXw", "1001xxx10100xxxx"},
	{"SUBXl", "1001xxx11000xxxx"},
	{"ADDXb", "1101xxx10000xxxx"},
	{"ADDXw", "1101xxx10100xxxx"},
	{"ADDXl", "1101xxx11000xxxx"},
	{"NEGX", "01000000xxxxxxxx"},
	{"MOVEM", "01001x001xxxxxxx"},
	{"BRA", "01100000xxxxxxxx"},
	{"BSR", "01100001xxxxxxxx"},

	// Register + effective address
	{"BTST", "0000xxx100xxxxxx"},
	{"BCHG", "0000xxx101xxxxxx"},
	{"BCLR", "0000xxx110xxxxxx"},
	{"BSET", "0000xxx111xxxxxx"},
	{"LEA", "0100xxx111xxxxxx"},
	{"CHK", "0100xxx110xxxxxx"},
	{"DIVU", "1000xxx011xxxxxx"},
	{"DIVS", "1000xxx111xxxxxx"},
	{"MULU", "1100xxx011xxxxxx"},
	{"MULS", "1100xxx111xxxxxx"},
	{"Scc", "0101xxxx11xxxxxx"},
	{"SUBAw", "1001xxx0x11xxxxx"},
	{"SUBAl", "1001xxx1x11xxxxx"},
	{"CMPAw", "1011xxx0x11xxxxx"},
	{"CMPAl", "1011xxx1x11xxxxx"},
	{"ADDAw", "1101xxx0x11xxxxx"},
	{"ADDAl", "1101xxx1x11xxxxx"},

	// Register shifts and rotates
	// Encoding: 1110 CCC D SS I TT RRR (count/reg, direction, size,
	// immediate-or-register count, type, register)
	{"ASRb", "1110xxx000x00xxx"},
	{"ASRw", "1110xxx001x00xxx"},
	{"ASRl", "1110xxx010x00xxx"},
	{"LSRb", "1110xxx000x01xxx"},
	{"LSRw", "1110xxx001x01xxx"},
	{"LSRl", "1110xxx010x01xxx"},
	{"ROXRb", "1110xxx000x10xxx"},
	{"ROXRw", "1110xxx001x10xxx"},
	{"ROXRl", "1110xxx010x10xxx"},
	{"RORb", "1110xxx000x11xxx"},
	{"RORw", "1110xxx001x11xxx"},
	{"RORl", "1110xxx010x11xxx"},
	{"ASLb", "1110xxx100x00xxx"},
	{"ASLw", "1110xxx101x00xxx"},
	{"ASLl", "1110xxx110x00xxx"},
	{"LSLb", "1110xxx100x01xxx"},
	{"LSLw", "1110xxx101x01xxx"},
	{"LSLl", "1110xxx110x01xxx"},
	{"ROXLb", "1110xxx100x10xxx"},
	{"ROXLw", "1110xxx101x10xxx"},
	{"ROXLl", "1110xxx110x10xxx"},
	{"ROLb", "1110xxx100x11xxx"},
	{"ROLw", "1110xxx101x11xxx"},
	{"ROLl", "1110xxx110x11xxx"},

	// Quick arithmetic
	{"ADDQb", "0101xxx000xxxxxx"},
	{"ADDQw", "0101xxx001xxxxxx"},
	{"ADDQl", "0101xxx010xxxxxx"},
	{"SUBQb", "0101xxx100xxxxxx"},
	{"SUBQw", "0101xxx101xxxxxx"},
	{"SUBQl", "0101xxx110xxxxxx"},

	// Two-operand arithmetic and logic groups
	{"EORb", "1011xxx100xxxxxx"},
	{"EORw", "1011xxx101xxxxxx"},
	{"EORl", "1011xxx110xxxxxx"},
	{"CMPb", "1011xxx000xxxxxx"},
	{"CMPw", "1011xxx001xxxxxx"},
	{"CMPl", "1011xxx010xxxxxx"},
	{"MOVEAw", "0001xxx001xxxxxx"},
	{"MOVEAl", "0011xxx001xxxxxx"},
	{"MOVEQ", "0111xxx0xxxxxxxx"},
	{"Bcc", "0110xxxxxxxxxxxx"},
	{"ORdnb", "1000xxx000xxxxxx"},
	{"ORdnw", "1000xxx001xxxxxx"},
	{"ORdnl", "1000xxx010xxxxxx"},
	{"OReab", "1000xxx100xxxxxx"},
	{"OReaw", "1000xxx101xxxxxx"},
	{"OReal", "1000xxx110xxxxxx"},
	{"SUBdnb", "1001xxx000xxxxxx"},
	{"SUBdnw", "1001xxx001xxxxxx"},
	{"SUBdnl", "1001xxx010xxxxxx"},
	{"SUBeab", "1001xxx100xxxxxx"},
	{"SUBeaw", "1001xxx101xxxxxx"},
	{"SUBeal", "1001xxx110xxxxxx"},
	{"ANDdnb", "1100xxx000xxxxxx"},
	{"ANDdnw", "1100xxx001xxxxxx"},
	{"ANDdnl", "1100xxx010xxxxxx"},
	{"ANDeab", "1100xxx100xxxxxx"},
	{"ANDeaw", "1100xxx101xxxxxx"},
	{"ANDeal", "1100xxx110xxxxxx"},
	{"ADDdnb", "1101xxx000xxxxxx"},
	{"ADDdnw", "1101xxx001xxxxxx"},
	{"ADDdnl", "1101xxx010xxxxxx"},
	{"ADDeab", "1101xxx100xxxxxx"},
	{"ADDeaw", "1101xxx101xxxxxx"},
	{"ADDeal", "1101xxx110xxxxxx"},

	// MOVE claims everything left in the 00xx quadrants
	{"MOVEb", "0001xxxxxxxxxxxx"},
	{"MOVEw", "0011xxxxxxxxxxxx"},
	{"MOVEl", "0010xxxxxxxxxxxx"},
}
