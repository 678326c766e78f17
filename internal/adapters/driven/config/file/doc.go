// Package file loads docmirror configuration from a TOML file.
// Every value has a built-in default; a missing config file is not an
// error.
package file
