package entities

type Quality string

const (
	QualityOffline Quality = "offline"
	QualityLow     Quality = "low"
	QualityHigh    Quality = "high"
)

func (q Quality) String() string {
	return string(q)
}
