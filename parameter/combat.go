package parameter

import (
	"time"
)

// Charge Attack
const (
	// AttackBaseDamage is damage dealt by an uncharged attack
	AttackBaseDamage = 50.0

	// AttackChargeMultiplier is the damage factor at full charge
	AttackChargeMultiplier = 3.0

	// AttackMaxChargeTime caps how long a charge keeps accumulating
	AttackMaxChargeTime = 1500 * time.Millisecond

	// AttackStaminaCost is consumed on every resolved attack regardless of charge
	AttackStaminaCost = 15.0

	// AttackCooldown is the minimum interval between resolved attacks
	AttackCooldown = 750 * time.Millisecond
)

// Weak Points
const (
	// WeakPointDamageMultiplier is the default multiplier for authored weak points
	WeakPointDamageMultiplier = 2.5
)
