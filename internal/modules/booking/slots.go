package booking

import "healthportal/internal/domain"

// FixedSlotProvider serves the daily schedule template. The same slots apply
// to every date and test; availability here is a static flag, not a per-date
// calculation.
type FixedSlotProvider struct {
	slots []domain.TimeSlot
}

func NewFixedSlotProvider() *FixedSlotProvider {
	return &FixedSlotProvider{slots: defaultSlots}
}

func (p *FixedSlotProvider) Slots() []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(p.slots))
	copy(out, p.slots)
	return out
}

var defaultSlots = []domain.TimeSlot{
	{Time: "8:00 AM", Available: true},
	{Time: "9:00 AM", Available: true},
	{Time: "10:00 AM", Available: false},
	{Time: "11:00 AM", Available: true},
	{Time: "2:00 PM", Available: true},
	{Time: "3:00 PM", Available: true},
	{Time: "4:00 PM", Available: false},
	{Time: "5:00 PM", Available: true},
}
