package replay

// TickInput records the input snapshot for a single simulation tick
type TickInput struct {
	T  uint64  `json:"t"`            // Tick number
	MX float64 `json:"mx,omitempty"` // MoveX axis
	MY float64 `json:"my,omitempty"` // MoveY axis
	B  bool    `json:"b,omitempty"`  // Boost
	F  bool    `json:"f,omitempty"`  // Fire
	W  int     `json:"w"`            // SelectWeapon (-1 = none)
}

// SessionData contains all data needed to replay a game session
type SessionData struct {
	Version   string      `json:"version"`
	Seed      int64       `json:"seed"`
	Stage     int         `json:"stage"`
	StartTime string      `json:"startTime"`
	Ticks     []TickInput `json:"ticks"`
}
