package timebound

// Version is the release of the timebound module.
const Version = "0.1.0"
