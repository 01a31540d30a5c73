package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubBattery struct {
	status BatteryStatus
	ok     bool
}

func (s stubBattery) BatteryStatus() (BatteryStatus, bool) { return s.status, s.ok }

type stubNetwork struct {
	effectiveType string
	ok            bool
}

func (s stubNetwork) EffectiveType() (string, bool) { return s.effectiveType, s.ok }

func TestPolicyLowPower(t *testing.T) {
	tests := []struct {
		name    string
		battery BatteryProvider
		want    bool
	}{
		{"capability absent", NoopBattery{}, false},
		{"charged and plugged", stubBattery{BatteryStatus{Level: 0.9, Charging: true}, true}, false},
		{"low level while plugged", stubBattery{BatteryStatus{Level: 0.1, Charging: true}, true}, true},
		{"unplugged at full charge", stubBattery{BatteryStatus{Level: 1.0, Charging: false}, true}, true},
		{"exactly at threshold plugged", stubBattery{BatteryStatus{Level: 0.20, Charging: true}, true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(tt.battery, nil, false)
			assert.Equal(t, tt.want, p.LowPower())
		})
	}
}

func TestPolicyTier(t *testing.T) {
	tests := []struct {
		name    string
		network NetworkProvider
		want    NetworkTier
	}{
		{"capability absent", NoopNetwork{}, TierUnknown},
		{"4g", stubNetwork{"4g", true}, TierHigh},
		{"3g", stubNetwork{"3g", true}, TierMedium},
		{"2g", stubNetwork{"2g", true}, TierLow},
		{"slow-2g", stubNetwork{"slow-2g", true}, TierLow},
		{"unrecognized type", stubNetwork{"5g", true}, TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(nil, tt.network, false)
			assert.Equal(t, tt.want, p.Tier())
		})
	}
}

func TestPolicyQualityHint(t *testing.T) {
	goodBattery := stubBattery{BatteryStatus{Level: 0.9, Charging: true}, true}
	lowBattery := stubBattery{BatteryStatus{Level: 0.1, Charging: false}, true}

	tests := []struct {
		name                string
		battery             BatteryProvider
		network             NetworkProvider
		constrainedViewport bool
		want                Quality
	}{
		{"no signals", nil, nil, false, QualityAuto},
		{"low power wins over fast network", lowBattery, stubNetwork{"4g", true}, false, QualityLow},
		{"slow connection", goodBattery, stubNetwork{"2g", true}, false, QualityLow},
		{"medium connection", goodBattery, stubNetwork{"3g", true}, false, QualityMedium},
		{"small viewport caps at medium", goodBattery, stubNetwork{"4g", true}, true, QualityMedium},
		{"fast network full viewport", goodBattery, stubNetwork{"4g", true}, false, QualityAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(tt.battery, tt.network, tt.constrainedViewport)
			assert.Equal(t, tt.want, p.QualityHint())
		})
	}
}

func TestPolicyAutoplay(t *testing.T) {
	p := NewPolicy(stubBattery{BatteryStatus{Level: 0.1, Charging: false}, true}, nil, false)
	assert.False(t, p.AllowAutoplay())

	p = NewPolicy(nil, nil, false)
	assert.True(t, p.AllowAutoplay())
}

func TestPolicyPollInterval(t *testing.T) {
	low := NewPolicy(stubBattery{BatteryStatus{Level: 0.1, Charging: false}, true}, nil, false)
	assert.Equal(t, 3*time.Second, low.PollInterval(time.Second))

	normal := NewPolicy(nil, nil, false)
	assert.Equal(t, time.Second, normal.PollInterval(time.Second))
	assert.Equal(t, DefaultPollInterval, normal.PollInterval(0))
}
