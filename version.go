package main

// _version is the version of typst-ansi-hl.
// Releases overwrite this with the -X linker flag.
var _version = "dev"
