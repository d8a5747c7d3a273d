package platform

// GNU ln: -T fails on an existing directory instead of linking inside it.
var lnForceFlags = []string{"-s", "-f", "-n", "-T"}
