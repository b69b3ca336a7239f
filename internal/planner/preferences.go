package planner

// Preferences are the named toggles gating each scoring rule. All
// toggles are enabled by default.
type Preferences struct {
	MorningPreference  bool `mapstructure:"morning_preference"`
	Avoid5Days         bool `mapstructure:"avoid_5_days"`
	LunchBreak         bool `mapstructure:"lunch_break"`
	LimitClassesPerDay bool `mapstructure:"limit_classes_per_day"`
	AvoidLateNights    bool `mapstructure:"avoid_late_nights"`
	BalanceGaps        bool `mapstructure:"balance_gaps"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		MorningPreference:  true,
		Avoid5Days:         true,
		LunchBreak:         true,
		LimitClassesPerDay: true,
		AvoidLateNights:    true,
		BalanceGaps:        true,
	}
}

// PreferenceOverrides is a partial Preferences: nil fields keep their
// default. Override keys that do not name a known toggle are ignored
// by the decoding layer.
type PreferenceOverrides struct {
	MorningPreference  *bool `mapstructure:"morning_preference"`
	Avoid5Days         *bool `mapstructure:"avoid_5_days"`
	LunchBreak         *bool `mapstructure:"lunch_break"`
	LimitClassesPerDay *bool `mapstructure:"limit_classes_per_day"`
	AvoidLateNights    *bool `mapstructure:"avoid_late_nights"`
	BalanceGaps        *bool `mapstructure:"balance_gaps"`
}

// Merge applies the overrides on top of the default preferences,
// field by field.
func (o PreferenceOverrides) Merge() Preferences {
	prefs := DefaultPreferences()
	if o.MorningPreference != nil {
		prefs.MorningPreference = *o.MorningPreference
	}
	if o.Avoid5Days != nil {
		prefs.Avoid5Days = *o.Avoid5Days
	}
	if o.LunchBreak != nil {
		prefs.LunchBreak = *o.LunchBreak
	}
	if o.LimitClassesPerDay != nil {
		prefs.LimitClassesPerDay = *o.LimitClassesPerDay
	}
	if o.AvoidLateNights != nil {
		prefs.AvoidLateNights = *o.AvoidLateNights
	}
	if o.BalanceGaps != nil {
		prefs.BalanceGaps = *o.BalanceGaps
	}
	return prefs
}

// Weights control the magnitude of each scoring rule's contribution.
// Penalties are negative, bonuses positive.
type Weights struct {
	MorningPenalty     float64 `mapstructure:"morning_penalty"`
	FiveDayPenalty     float64 `mapstructure:"five_day_penalty"`
	GapTooShortPenalty float64 `mapstructure:"gap_too_short_penalty"`
	GapTooLongPenalty  float64 `mapstructure:"gap_too_long_penalty"`
	LunchBonus         float64 `mapstructure:"lunch_bonus"`
	ClassCountPenalty  float64 `mapstructure:"class_count_penalty"`
	LateNightPenalty   float64 `mapstructure:"late_night_penalty"`
}

func DefaultWeights() Weights {
	return Weights{
		MorningPenalty:     -5,
		FiveDayPenalty:     -30,
		GapTooShortPenalty: -5,
		GapTooLongPenalty:  -3,
		LunchBonus:         10,
		ClassCountPenalty:  -4,
		LateNightPenalty:   -10,
	}
}

// WeightOverrides is a partial Weights merged over the defaults the
// same way PreferenceOverrides is.
type WeightOverrides struct {
	MorningPenalty     *float64 `mapstructure:"morning_penalty"`
	FiveDayPenalty     *float64 `mapstructure:"five_day_penalty"`
	GapTooShortPenalty *float64 `mapstructure:"gap_too_short_penalty"`
	GapTooLongPenalty  *float64 `mapstructure:"gap_too_long_penalty"`
	LunchBonus         *float64 `mapstructure:"lunch_bonus"`
	ClassCountPenalty  *float64 `mapstructure:"class_count_penalty"`
	LateNightPenalty   *float64 `mapstructure:"late_night_penalty"`
}

func (o WeightOverrides) Merge() Weights {
	weights := DefaultWeights()
	if o.MorningPenalty != nil {
		weights.MorningPenalty = *o.MorningPenalty
	}
	if o.FiveDayPenalty != nil {
		weights.FiveDayPenalty = *o.FiveDayPenalty
	}
	if o.GapTooShortPenalty != nil {
		weights.GapTooShortPenalty = *o.GapTooShortPenalty
	}
	if o.GapTooLongPenalty != nil {
		weights.GapTooLongPenalty = *o.GapTooLongPenalty
	}
	if o.LunchBonus != nil {
		weights.LunchBonus = *o.LunchBonus
	}
	if o.ClassCountPenalty != nil {
		weights.ClassCountPenalty = *o.ClassCountPenalty
	}
	if o.LateNightPenalty != nil {
		weights.LateNightPenalty = *o.LateNightPenalty
	}
	return weights
}
