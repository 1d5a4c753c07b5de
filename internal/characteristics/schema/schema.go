// Package schema enumerates the scalar kart characteristics.
//
// Every characteristic is identified by a Key. Keys are grouped by the
// subsystem they tune and print as "group.field" (the lone mass
// characteristic prints as "mass"). The table below is the single source of
// truth: the typed accessors in package characteristics are generated from it
// by cmd/charsgen.
package schema

import "strings"

// Key identifies one scalar characteristic.
type Key uint8

const (
	SuspensionStiffness Key = iota
	SuspensionRest
	SuspensionTravelCm
	SuspensionExpSpringResponse
	SuspensionMaxForce

	StabilityRollInfluence
	StabilityChassisLinearDamping
	StabilityChassisAngularDamping
	StabilityDownwardImpulseFactor
	StabilityTrackConnectionAccel
	StabilitySmoothFlyingImpulse

	TurnTimeResetSteer

	EnginePower
	EngineMaxSpeed
	EngineBrakeFactor
	EngineBrakeTimeIncrease
	EngineMaxSpeedReverseRatio

	Mass

	WheelsDampingRelaxation
	WheelsDampingCompression
	WheelsRadius

	CameraDistance
	CameraForwardUpAngle
	CameraBackwardUpAngle

	JumpAnimationTime

	LeanMax
	LeanSpeed

	AnvilDuration
	AnvilWeight
	AnvilSpeedFactor

	ParachuteFriction
	ParachuteDuration
	ParachuteDurationOther
	ParachuteLboundFraction
	ParachuteUboundFraction
	ParachuteMaxSpeed

	BubblegumDuration
	BubblegumSpeedFraction
	BubblegumTorque
	BubblegumFadeInTime
	BubblegumShieldDuration

	ZipperDuration
	ZipperForce
	ZipperSpeedGain
	ZipperSpeedIncrease
	ZipperFadeOutTime

	SwatterDuration
	SwatterDistance
	SwatterSquashDuration
	SwatterSquashSlowdown

	PlungerMaxLength
	PlungerForce
	PlungerDuration
	PlungerSpeedIncrease
	PlungerFadeOutTime
	PlungerInFaceTime

	RescueDuration
	RescueVertOffset
	RescueHeight

	ExplosionDuration
	ExplosionRadius
	ExplosionInvulnerabilityTime

	NitroDuration
	NitroEngineForce
	NitroConsumption
	NitroSmallContainer
	NitroBigContainer
	NitroMaxSpeedIncrease
	NitroFadeOutTime
	NitroMax

	SlipstreamDuration
	SlipstreamLength
	SlipstreamWidth
	SlipstreamCollectTime
	SlipstreamUseTime
	SlipstreamAddPower
	SlipstreamMinSpeed
	SlipstreamMaxSpeedIncrease
	SlipstreamFadeOutTime

	// Count is the number of keys; it is not itself a key.
	Count
)

type definition struct {
	group string
	field string // empty for single-value groups
	doc   string
}

var definitions = [Count]definition{
	SuspensionStiffness:         {"suspension", "stiffness", "spring stiffness of the suspension"},
	SuspensionRest:              {"suspension", "rest", "rest length of the suspension"},
	SuspensionTravelCm:          {"suspension", "travelCm", "maximum suspension travel in cm"},
	SuspensionExpSpringResponse: {"suspension", "expSpringResponse", "exponential spring response factor"},
	SuspensionMaxForce:          {"suspension", "maxForce", "maximum suspension force"},

	StabilityRollInfluence:         {"stability", "rollInfluence", "influence of the roll on the chassis"},
	StabilityChassisLinearDamping:  {"stability", "chassisLinearDamping", "linear damping of the chassis"},
	StabilityChassisAngularDamping: {"stability", "chassisAngularDamping", "angular damping of the chassis"},
	StabilityDownwardImpulseFactor: {"stability", "downwardImpulseFactor", "downward impulse applied to keep the kart on track"},
	StabilityTrackConnectionAccel:  {"stability", "trackConnectionAccel", "acceleration pulling the kart to the track"},
	StabilitySmoothFlyingImpulse:   {"stability", "smoothFlyingImpulse", "impulse smoothing while airborne"},

	TurnTimeResetSteer: {"turn", "timeResetSteer", "time to reset steering to straight"},

	EnginePower:                {"engine", "power", "engine power"},
	EngineMaxSpeed:             {"engine", "maxSpeed", "maximum speed"},
	EngineBrakeFactor:          {"engine", "brakeFactor", "brake force relative to engine power"},
	EngineBrakeTimeIncrease:    {"engine", "brakeTimeIncrease", "brake force increase per second of braking"},
	EngineMaxSpeedReverseRatio: {"engine", "maxSpeedReverseRatio", "maximum reverse speed as a fraction of max speed"},

	Mass: {"mass", "", "kart mass"},

	WheelsDampingRelaxation:  {"wheels", "dampingRelaxation", "wheel damping while relaxing"},
	WheelsDampingCompression: {"wheels", "dampingCompression", "wheel damping while compressing"},
	WheelsRadius:             {"wheels", "radius", "wheel radius"},

	CameraDistance:        {"camera", "distance", "camera distance behind the kart"},
	CameraForwardUpAngle:  {"camera", "forwardUpAngle", "camera pitch while driving forward"},
	CameraBackwardUpAngle: {"camera", "backwardUpAngle", "camera pitch while looking back"},

	JumpAnimationTime: {"jump", "animationTime", "minimum airborne time to play the jump animation"},

	LeanMax:   {"lean", "max", "maximum lean angle"},
	LeanSpeed: {"lean", "speed", "lean speed"},

	AnvilDuration:    {"anvil", "duration", "time an anvil stays attached"},
	AnvilWeight:      {"anvil", "weight", "weight added by an anvil"},
	AnvilSpeedFactor: {"anvil", "speedFactor", "speed factor while carrying an anvil"},

	ParachuteFriction:       {"parachute", "friction", "friction added by a parachute"},
	ParachuteDuration:       {"parachute", "duration", "parachute duration"},
	ParachuteDurationOther:  {"parachute", "durationOther", "parachute duration when used on another kart"},
	ParachuteLboundFraction: {"parachute", "lboundFraction", "lower speed fraction bound to remove the parachute"},
	ParachuteUboundFraction: {"parachute", "uboundFraction", "upper speed fraction bound to remove the parachute"},
	ParachuteMaxSpeed:       {"parachute", "maxSpeed", "maximum speed while the parachute is attached"},

	BubblegumDuration:       {"bubblegum", "duration", "time a bubblegum slows the kart"},
	BubblegumSpeedFraction:  {"bubblegum", "speedFraction", "speed fraction while stuck in bubblegum"},
	BubblegumTorque:         {"bubblegum", "torque", "torque applied when hitting bubblegum"},
	BubblegumFadeInTime:     {"bubblegum", "fadeInTime", "time for the slowdown to take full effect"},
	BubblegumShieldDuration: {"bubblegum", "shieldDuration", "bubblegum shield duration"},

	ZipperDuration:      {"zipper", "duration", "zipper duration"},
	ZipperForce:         {"zipper", "force", "additional engine force from a zipper"},
	ZipperSpeedGain:     {"zipper", "speedGain", "instant speed gain from a zipper"},
	ZipperSpeedIncrease: {"zipper", "speedIncrease", "max speed increase from a zipper"},
	ZipperFadeOutTime:   {"zipper", "fadeOutTime", "time for the zipper bonus to fade"},

	SwatterDuration:       {"swatter", "duration", "swatter duration"},
	SwatterDistance:       {"swatter", "distance", "swatter reach"},
	SwatterSquashDuration: {"swatter", "squashDuration", "time a swatted kart stays squashed"},
	SwatterSquashSlowdown: {"swatter", "squashSlowdown", "speed fraction while squashed"},

	PlungerMaxLength:     {"plunger", "maxLength", "maximum rubber band length"},
	PlungerForce:         {"plunger", "force", "rubber band pull force"},
	PlungerDuration:      {"plunger", "duration", "rubber band duration"},
	PlungerSpeedIncrease: {"plunger", "speedIncrease", "max speed increase while pulled"},
	PlungerFadeOutTime:   {"plunger", "fadeOutTime", "time for the pull bonus to fade"},
	PlungerInFaceTime:    {"plunger", "inFaceTime", "time a plunger blocks the view"},

	RescueDuration:   {"rescue", "duration", "rescue duration"},
	RescueVertOffset: {"rescue", "vertOffset", "vertical offset when dropped back on track"},
	RescueHeight:     {"rescue", "height", "height the kart is lifted to"},

	ExplosionDuration:            {"explosion", "duration", "explosion animation duration"},
	ExplosionRadius:              {"explosion", "radius", "explosion effect radius"},
	ExplosionInvulnerabilityTime: {"explosion", "invulnerabilityTime", "invulnerability after being hit"},

	NitroDuration:         {"nitro", "duration", "time a nitro use lasts"},
	NitroEngineForce:      {"nitro", "engineForce", "additional engine force from nitro"},
	NitroConsumption:      {"nitro", "consumption", "nitro consumed per second"},
	NitroSmallContainer:   {"nitro", "smallContainer", "nitro in a small container"},
	NitroBigContainer:     {"nitro", "bigContainer", "nitro in a big container"},
	NitroMaxSpeedIncrease: {"nitro", "maxSpeedIncrease", "max speed increase from nitro"},
	NitroFadeOutTime:      {"nitro", "fadeOutTime", "time for the nitro bonus to fade"},
	NitroMax:              {"nitro", "max", "maximum nitro a kart can hold"},

	SlipstreamDuration:         {"slipstream", "duration", "slipstream bonus duration"},
	SlipstreamLength:           {"slipstream", "length", "length of the slipstream area"},
	SlipstreamWidth:            {"slipstream", "width", "width of the slipstream area"},
	SlipstreamCollectTime:      {"slipstream", "collectTime", "time needed in the slipstream to earn the bonus"},
	SlipstreamUseTime:          {"slipstream", "useTime", "time the bonus can be used"},
	SlipstreamAddPower:         {"slipstream", "addPower", "additional power from the slipstream"},
	SlipstreamMinSpeed:         {"slipstream", "minSpeed", "minimum speed for the slipstream to work"},
	SlipstreamMaxSpeedIncrease: {"slipstream", "maxSpeedIncrease", "max speed increase from the slipstream"},
	SlipstreamFadeOutTime:      {"slipstream", "fadeOutTime", "time for the slipstream bonus to fade"},
}

var byName = func() map[string]Key {
	m := make(map[string]Key, Count)
	for k := Key(0); k < Count; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// Valid reports whether k names a characteristic.
func (k Key) Valid() bool { return k < Count }

// Group returns the subsystem the key belongs to.
func (k Key) Group() string {
	if !k.Valid() {
		return ""
	}
	return definitions[k].group
}

// Field returns the key's name within its group; empty for single-value groups.
func (k Key) Field() string {
	if !k.Valid() {
		return ""
	}
	return definitions[k].field
}

// Doc returns a one-line description of the characteristic.
func (k Key) Doc() string {
	if !k.Valid() {
		return ""
	}
	return definitions[k].doc
}

// String returns "group.field", or the group alone for single-value groups.
func (k Key) String() string {
	if !k.Valid() {
		return "invalid"
	}
	d := definitions[k]
	if d.field == "" {
		return d.group
	}
	return d.group + "." + d.field
}

// Parse looks a key up by its string form, ignoring case.
func Parse(s string) (Key, bool) {
	k, ok := byName[strings.ToLower(s)]
	return k, ok
}

// All returns every key in declaration order.
func All() []Key {
	keys := make([]Key, Count)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Groups returns the distinct groups in declaration order.
func Groups() []string {
	var groups []string
	for k := Key(0); k < Count; k++ {
		g := definitions[k].group
		if len(groups) == 0 || groups[len(groups)-1] != g {
			groups = append(groups, g)
		}
	}
	return groups
}

// InGroup returns the keys of one group in declaration order.
func InGroup(group string) []Key {
	var keys []Key
	for k := Key(0); k < Count; k++ {
		if definitions[k].group == group {
			keys = append(keys, k)
		}
	}
	return keys
}

// GoName returns the exported Go identifier used for the key's accessors,
// for example "SuspensionTravelCm".
func (k Key) GoName() string {
	if !k.Valid() {
		return ""
	}
	d := definitions[k]
	return upperFirst(d.group) + upperFirst(d.field)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
