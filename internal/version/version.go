package version

// Version is the kilo release shown in the welcome banner and by `kilo version`.
var Version = "0.0.1"
