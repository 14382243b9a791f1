package version

// Version is overridden at build time via
// -ldflags "-X github.com/nholzer/samplecheck/pkg/version.Version=x.y.z".
var Version = "dev"
