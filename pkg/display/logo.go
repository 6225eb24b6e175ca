package display

// Logo is the text of the splash screen, one entry per panel line.
var Logo = []string{
	"Raspberry Pi",
	"sysinfo",
	"PCD8544",
}
