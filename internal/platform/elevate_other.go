//go:build !unix

package platform

var lnForceFlags = []string{"-s", "-f"}

func platformElevator() Elevator {
	return Unsupported{}
}
