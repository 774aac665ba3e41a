package domain

// Hidden challenge identifiers. Each one is completable once per player.
const (
	ChallengeBatteryLow  = "hidden_battery_low"
	ChallengeBatteryFull = "hidden_battery_full"
	ChallengeCharging    = "hidden_charging"
	ChallengeVolumeMute  = "hidden_volume_mute"
	ChallengeVolumeMax   = "hidden_volume_max"
	ChallengeUpsideDown  = "hidden_upside_down"
	ChallengeLandscape   = "hidden_landscape"
	ChallengeOffline     = "hidden_offline"
	ChallengeWifi        = "hidden_wifi"
	ChallengeCellular    = "hidden_cellular"
)

// Orientation of the device at snapshot time
type Orientation string

const (
	OrientationUnknown            Orientation = "unknown"
	OrientationPortrait           Orientation = "portrait"
	OrientationPortraitUpsideDown Orientation = "portrait_upside_down"
	OrientationLandscapeLeft      Orientation = "landscape_left"
	OrientationLandscapeRight     Orientation = "landscape_right"
	OrientationFaceUp             Orientation = "face_up"
	OrientationFaceDown           Orientation = "face_down"
)

// Reachability is the network class the device reports
type Reachability string

const (
	ReachabilityNone     Reachability = "none"
	ReachabilityWifi     Reachability = "wifi"
	ReachabilityCellular Reachability = "cellular"
)

// DeviceState is a snapshot of the ambient device signals the client reports.
// BatteryLevel and Volume are in [0,1]; a negative value means unknown.
type DeviceState struct {
	BatteryLevel float64      `json:"battery_level" validate:"gte=-1,lte=1"`
	Charging     bool         `json:"charging"`
	Volume       float64      `json:"volume" validate:"gte=-1,lte=1"`
	Orientation  Orientation  `json:"orientation"`
	Network      Reachability `json:"network"`
}

// ChallengeCompletion is emitted when a hidden challenge transitions to completed
type ChallengeCompletion struct {
	ChallengeID   string `json:"challenge_id"`
	RewardIconID  string `json:"reward_icon_id"`
	NewlyUnlocked bool   `json:"newly_unlocked"`
}

// ChallengeStatus describes one hidden challenge for a player
type ChallengeStatus struct {
	ChallengeID  string `json:"challenge_id"`
	RewardIconID string `json:"reward_icon_id"`
	Completed    bool   `json:"completed"`
}
