package player

import "time"

// Low-power thresholds and the relaxed sampling rate used under it
const (
	lowBatteryLevel     = 0.20
	lowPowerPollFactor  = 3
	nearThresholdSecond = 5.0
)

// BatteryStatus is a point-in-time battery reading
type BatteryStatus struct {
	Level    float64 // 0.0 - 1.0
	Charging bool
}

// BatteryProvider reports battery state. The second return is false when the
// capability is absent, which means "no adjustment", never an error.
type BatteryProvider interface {
	BatteryStatus() (BatteryStatus, bool)
}

// NetworkProvider reports the connection's effective type ("4g", "3g",
// "2g", "slow-2g"). The second return is false when the capability is
// absent.
type NetworkProvider interface {
	EffectiveType() (string, bool)
}

// NoopBattery is the default BatteryProvider: capability absent
type NoopBattery struct{}

// BatteryStatus always reports the capability as absent
func (NoopBattery) BatteryStatus() (BatteryStatus, bool) { return BatteryStatus{}, false }

// NoopNetwork is the default NetworkProvider: capability absent
type NoopNetwork struct{}

// EffectiveType always reports the capability as absent
func (NoopNetwork) EffectiveType() (string, bool) { return "", false }

// NetworkTier buckets the connection quality
type NetworkTier int

const (
	TierUnknown NetworkTier = iota
	TierLow
	TierMedium
	TierHigh
)

// Policy derives playback adjustments from device capability signals
type Policy struct {
	battery             BatteryProvider
	network             NetworkProvider
	constrainedViewport bool
}

// NewPolicy creates a policy; nil providers default to the no-op ones
func NewPolicy(battery BatteryProvider, network NetworkProvider, constrainedViewport bool) *Policy {
	if battery == nil {
		battery = NoopBattery{}
	}
	if network == nil {
		network = NoopNetwork{}
	}
	return &Policy{
		battery:             battery,
		network:             network,
		constrainedViewport: constrainedViewport,
	}
}

// LowPower reports whether battery conservation should kick in: level below
// 20% or running unplugged. Absent capability means false.
func (p *Policy) LowPower() bool {
	status, ok := p.battery.BatteryStatus()
	if !ok {
		return false
	}
	return status.Level < lowBatteryLevel || !status.Charging
}

// Tier maps the connection effective type to a quality tier
func (p *Policy) Tier() NetworkTier {
	effectiveType, ok := p.network.EffectiveType()
	if !ok {
		return TierUnknown
	}
	switch effectiveType {
	case "4g":
		return TierHigh
	case "3g":
		return TierMedium
	case "2g", "slow-2g":
		return TierLow
	default:
		return TierUnknown
	}
}

// QualityHint derives the playback quality to request from the player
func (p *Policy) QualityHint() Quality {
	if p.LowPower() || p.Tier() == TierLow {
		return QualityLow
	}
	if p.Tier() == TierMedium {
		return QualityMedium
	}
	if p.constrainedViewport {
		// Small viewports never benefit from more than medium
		return QualityMedium
	}
	return QualityAuto
}

// AllowAutoplay reports whether autoplay is permitted under the current
// power conditions
func (p *Policy) AllowAutoplay() bool {
	return !p.LowPower()
}

// PollInterval relaxes the base sampling rate under low power
func (p *Policy) PollInterval(base time.Duration) time.Duration {
	if base <= 0 {
		base = DefaultPollInterval
	}
	if p.LowPower() {
		return base * lowPowerPollFactor
	}
	return base
}
