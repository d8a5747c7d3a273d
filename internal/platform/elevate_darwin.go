package platform

// BSD ln: -F replaces an existing entry (implies -f).
var lnForceFlags = []string{"-F", "-s"}

func platformElevator() Elevator {
	if geteuid() == 0 {
		return Direct{}
	}
	return Osascript{}
}
