package usage

const usageKey = "usage.%s"

const (
	fieldCount   = "count"
	fieldPremium = "premium"
)

// Usage is the creation history of one device.
type Usage struct {
	DeviceId string
	Count    int64
	Premium  bool
}
