package hidden

import (
	"github.com/osse101/IconIdle_Go/internal/catalog"
	"github.com/osse101/IconIdle_Go/internal/domain"
)

// Predicate reports whether a device snapshot satisfies a challenge
type Predicate func(state domain.DeviceState) bool

// Challenge binds a hidden challenge to its predicate and reward icon
type Challenge struct {
	ID           string
	RewardIconID string
	Satisfied    Predicate
}

// challenges is evaluated in this order on every check.
var challenges = []Challenge{
	{ID: domain.ChallengeBatteryLow, RewardIconID: catalog.IconBattery0Bar, Satisfied: batteryLow},
	{ID: domain.ChallengeBatteryFull, RewardIconID: catalog.IconBatteryFull, Satisfied: batteryFull},
	{ID: domain.ChallengeCharging, RewardIconID: catalog.IconPlug, Satisfied: charging},
	{ID: domain.ChallengeVolumeMute, RewardIconID: catalog.IconMute, Satisfied: volumeMute},
	{ID: domain.ChallengeVolumeMax, RewardIconID: catalog.IconVolumeMax, Satisfied: volumeMax},
	{ID: domain.ChallengeUpsideDown, RewardIconID: catalog.IconUpsideDown, Satisfied: upsideDown},
	{ID: domain.ChallengeLandscape, RewardIconID: catalog.IconLandscape, Satisfied: landscape},
	{ID: domain.ChallengeOffline, RewardIconID: catalog.IconAirplane, Satisfied: offline},
	{ID: domain.ChallengeWifi, RewardIconID: catalog.IconWifi, Satisfied: onWifi},
	{ID: domain.ChallengeCellular, RewardIconID: catalog.IconCellTower, Satisfied: onCellular},
}

var rewardByChallenge = func() map[string]string {
	m := make(map[string]string, len(challenges))
	for _, c := range challenges {
		m[c.ID] = c.RewardIconID
	}
	return m
}()

// Challenges returns the challenge table in evaluation order
func Challenges() []Challenge {
	out := make([]Challenge, len(challenges))
	copy(out, challenges)
	return out
}

// RewardIconID returns the icon granted by a challenge
func RewardIconID(challengeID string) (string, bool) {
	id, ok := rewardByChallenge[challengeID]
	return id, ok
}

func batteryKnown(s domain.DeviceState) bool {
	return s.BatteryLevel >= 0
}

func batteryLow(s domain.DeviceState) bool {
	return batteryKnown(s) && s.BatteryLevel <= batteryLowMax && !s.Charging
}

func batteryFull(s domain.DeviceState) bool {
	return batteryKnown(s) && s.BatteryLevel >= batteryFullMin && s.Charging
}

func charging(s domain.DeviceState) bool {
	return s.Charging
}

func volumeMute(s domain.DeviceState) bool {
	return s.Volume >= 0 && s.Volume <= volumeMuteMax
}

func volumeMax(s domain.DeviceState) bool {
	return s.Volume >= volumeMaxMin
}

func upsideDown(s domain.DeviceState) bool {
	return s.Orientation == domain.OrientationPortraitUpsideDown
}

func landscape(s domain.DeviceState) bool {
	return s.Orientation == domain.OrientationLandscapeLeft || s.Orientation == domain.OrientationLandscapeRight
}

func offline(s domain.DeviceState) bool {
	return s.Network == domain.ReachabilityNone
}

func onWifi(s domain.DeviceState) bool {
	return s.Network == domain.ReachabilityWifi
}

func onCellular(s domain.DeviceState) bool {
	return s.Network == domain.ReachabilityCellular
}
