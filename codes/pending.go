package codes

// Standard PIDs that are known but not yet catalogued with a symbol. They are described so
// live data from an ECU that implements them can still be labelled.
var pendingPIDs = map[byte]string{
	0x54: "Evap system vapor pressure",
	0x55: "Short term secondary oxygen sensor trim, A: bank 1, B: bank 3",
	0x56: "Long term secondary oxygen sensor trim, A: bank 1, B: bank 3",
	0x57: "Short term secondary oxygen sensor trim, A: bank 2, B: bank 4",
	0x58: "Long term secondary oxygen sensor trim, A: bank 2, B: bank 4",
	0x59: "Fuel rail absolute pressure",
	0x5A: "Relative accelerator pedal position",
	0x5B: "Hybrid battery pack remaining life",
	0x5C: "Engine oil temperature",
	0x5D: "Fuel injection timing",
	0x5E: "Engine fuel rate",
	0x5F: "Emission requirements to which vehicle is designed",
	0x60: "PIDs supported [61 - 80]",
	0x61: "Driver's demand engine - percent torque",
	0x62: "Actual engine - percent torque",
	0x63: "Engine reference torque",
	0x64: "Engine percent torque data",
	0x65: "Auxiliary input / output supported",
	0x66: "Mass air flow sensor",
	0x67: "Engine coolant temperature",
	0x68: "Intake air temperature sensor",
	0x69: "Commanded EGR and EGR Error",
	0x6A: "Commanded Diesel intake air flow control and relative intake air flow position",
	0x6B: "Exhaust gas recirculation temperature",
	0x6C: "Commanded throttle actuator control and relative throttle position",
	0x6D: "Fuel pressure control system",
	0x6E: "Injection pressure control system",
	0x6F: "Turbocharger compressor inlet pressure",
	0x70: "Boost pressure control",
	0x71: "Variable Geometry turbo (VGT) control",
	0x72: "Wastegate control",
	0x73: "Exhaust pressure",
	0x74: "Turbocharger RPM",
	0x75: "Turbocharger temperature",
	0x76: "Turbocharger temperature",
	0x77: "Charge air cooler temperature (CACT)",
	0x78: "Exhaust Gas temperature (EGT) Bank 1",
	0x79: "Exhaust Gas temperature (EGT) Bank 2",
	0x7A: "Diesel particulate filter (DPF)",
	0x7B: "Diesel particulate filter (DPF)",
	0x7C: "Diesel Particulate filter (DPF) temperature",
	0x7D: "NOx NTE (Not-To-Exceed) control area status",
	0x7E: "PM NTE (Not-To-Exceed) control area status",
	0x7F: "Engine run time",
	0x80: "PIDs supported [81 - A0]",
	0x81: "Engine run time for Auxiliary Emissions Control Device(AECD)",
	0x82: "Engine run time for Auxiliary Emissions Control Device(AECD)",
	0x83: "NOx sensor",
	0x84: "Manifold surface temperature",
	0x85: "NOx reagent system",
	0x86: "Particulate matter (PM) sensor",
	0x87: "Intake manifold absolute pressure",
	0xA0: "PIDs supported [A1 - C0]",
	0xC0: "PIDs supported [C1 - E0]",
}

// PIDDescription returns the label of a catalogued PID or the description of a pending one.
func PIDDescription(b byte) (string, bool) {
	if label, ok := pidCodeLabels[PIDCode(b)]; ok {
		return label, true
	}
	desc, ok := pendingPIDs[b]
	return desc, ok
}

// PendingPIDCodes returns the described but uncatalogued PIDs in ascending order.
// The slice is a copy.
func PendingPIDCodes() []byte {
	return sortedKeys(pendingPIDs)
}
