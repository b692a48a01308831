package event

var typeToName = map[EventType]string{
	EventHostShakeStart:      "HostShakeStart",
	EventHostShakeEnd:        "HostShakeEnd",
	EventHostMoved:           "HostMoved",
	EventHostDamaged:         "HostDamaged",
	EventHostDeath:           "HostDeath",
	EventGripStart:           "GripStart",
	EventGripEnd:             "GripEnd",
	EventGripFailed:          "GripFailed",
	EventGripPointChanged:    "GripPointChanged",
	EventStaminaChanged:      "StaminaChanged",
	EventGripStrengthChanged: "GripStrengthChanged",
	EventJumpOff:             "JumpOff",
	EventChargeStart:         "ChargeStart",
	EventAttackResolved:      "AttackResolved",
	EventAttackDenied:        "AttackDenied",
}

// String returns the registered name, used in log fields and metric attributes
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType resolves a registered name back to its EventType
func GetEventType(name string) (EventType, bool) {
	for t, n := range typeToName {
		if n == name {
			return t, true
		}
	}
	return EventNone, false
}
