package main

import "os"

// Environment variables consulted for flag defaults.
const (
	envFormat = "TREETABLE_FORMAT"
	envSeq    = "TREETABLE_SEQ"
	envMap    = "TREETABLE_MAP"
	envBorder = "TREETABLE_BORDER"
	envAlign  = "TREETABLE_ALIGN"
	envVAlign = "TREETABLE_VALIGN"
	envWidth  = "TREETABLE_WIDTH"
	envTab    = "TREETABLE_TAB"
)

type settings struct {
	format  string
	seq     string
	mapping string
	border  string
	align   string
	valign  string
	width   string
	tab     string
	debug   bool
}

func defaultSettings() settings {
	return settings{
		seq:     "column",
		mapping: "column",
		border:  "ascii",
		align:   "left",
		valign:  "top",
		width:   "rune",
		tab:     "4",
	}
}

// loadEnv overrides defaults with any environment variable that is set.
func loadEnv(s settings, lookup func(string) (string, bool)) settings {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for key, field := range map[string]*string{
		envFormat: &s.format,
		envSeq:    &s.seq,
		envMap:    &s.mapping,
		envBorder: &s.border,
		envAlign:  &s.align,
		envVAlign: &s.valign,
		envWidth:  &s.width,
		envTab:    &s.tab,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*field = v
		}
	}
	return s
}
