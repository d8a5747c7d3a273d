//go:build unix && !darwin

package platform

func platformElevator() Elevator {
	if geteuid() == 0 {
		return Direct{}
	}
	return Unix{}
}
