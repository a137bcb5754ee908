package entity

import "time"

// BannerType selects the banner's visual treatment.
type BannerType string

const (
	BannerGradient BannerType = "gradient"
	BannerImage    BannerType = "image"
)

// IsValid checks if the BannerType is a known value.
func (t BannerType) IsValid() bool {
	return t == BannerGradient || t == BannerImage
}

// Banner is a promotional carousel entry managed by admins. Expiry
// demotes Active to false via the periodic sweep; banners are never
// auto-deleted and never auto-reactivated.
type Banner struct {
	ID        string     `json:"id" firestore:"-"`
	Title     string     `json:"title" firestore:"title"`
	Subtitle  string     `json:"subtitle,omitempty" firestore:"subtitle,omitempty"`
	Type      BannerType `json:"type" firestore:"type"`
	Gradient  string     `json:"gradient,omitempty" firestore:"gradient,omitempty"`
	Image     string     `json:"image,omitempty" firestore:"image,omitempty"`
	Icon      string     `json:"icon,omitempty" firestore:"icon,omitempty"`
	StartDate string     `json:"startDate" firestore:"startDate"` // calendar date, inclusive (YYYY-MM-DD)
	EndDate   string     `json:"endDate" firestore:"endDate"`     // calendar date, inclusive (YYYY-MM-DD)
	Active    bool       `json:"active" firestore:"active"`
	Link      string     `json:"link,omitempty" firestore:"link,omitempty"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time  `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// dateLayout matches the calendar dates the dashboard stores.
const dateLayout = "2006-01-02"

// Expired reports whether the banner's end date is strictly before
// today's calendar date. An unset end date never expires.
func (b *Banner) Expired(now time.Time) bool {
	if b.EndDate == "" {
		return false
	}

	// Lexicographic comparison is safe for YYYY-MM-DD.
	return b.EndDate < now.Format(dateLayout)
}

// DaysRemaining returns whole days until the end date, negative once
// past. ok is false when no end date is set.
func (b *Banner) DaysRemaining(now time.Time) (int, bool) {
	if b.EndDate == "" {
		return 0, false
	}
	end, err := time.Parse(dateLayout, b.EndDate)
	if err != nil {
		return 0, false
	}

	days := int(end.Sub(now).Hours() / 24)
	if end.After(now) && end.Sub(now)%(24*time.Hour) != 0 {
		days++ // partial day still counts as a remaining day
	}

	return days, true
}

// EligibleBanners filters to the banners currently eligible for rotation.
func EligibleBanners(banners []*Banner) []*Banner {
	eligible := make([]*Banner, 0, len(banners))
	for _, b := range banners {
		if b.Active {
			eligible = append(eligible, b)
		}
	}

	return eligible
}

// Rotator is the carousel's rotation state over a fixed eligible slice.
// Ticks advance round-robin; manual navigation overrides the current
// index without stopping the recurring timer. The caller owns the timer;
// the rotator is pure state transitions.
type Rotator struct {
	count int
	index int
}

// NewRotator builds a rotator over n eligible banners.
func NewRotator(n int) *Rotator {
	return &Rotator{count: n}
}

// Index returns the currently shown banner index.
func (r *Rotator) Index() int {
	return r.index
}

// ShowsControls reports whether navigation controls should render:
// hidden for zero or one eligible banner.
func (r *Rotator) ShowsControls() bool {
	return r.count > 1
}

// Tick advances round-robin on the dwell timer.
func (r *Rotator) Tick() {
	r.Next()
}

// Next advances to the following banner, wrapping around.
func (r *Rotator) Next() {
	if r.count == 0 {
		return
	}
	r.index = (r.index + 1) % r.count
}

// Prev moves to the previous banner, wrapping around.
func (r *Rotator) Prev() {
	if r.count == 0 {
		return
	}
	r.index = (r.index - 1 + r.count) % r.count
}

// Jump selects a banner directly. Out-of-range indexes are ignored.
func (r *Rotator) Jump(i int) {
	if i < 0 || i >= r.count {
		return
	}
	r.index = i
}
