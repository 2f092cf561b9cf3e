package version

// AppVersion is the toolcheck release version. Override at build time with
// -ldflags "-X toolcheck/internal/version.AppVersion=x.y.z".
var AppVersion = "0.1.0"
