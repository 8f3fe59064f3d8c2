package model

import "sort"

// Machines is the bounded set of bookable machines, keyed by machine
// identifier with a human-readable label.
var Machines = map[string]string{
	"masina1":  "Mașină Spălat 1",
	"masina2":  "Mașină Spălat 2",
	"uscator1": "Uscător 1",
	"uscator2": "Uscător 2",
}

func IsValidMachine(machine string) bool {
	_, ok := Machines[machine]
	return ok
}

// MachineIDs returns the machine identifiers accepted by the booking API.
func MachineIDs() []string {
	ids := make([]string, 0, len(Machines))
	for id := range Machines {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
