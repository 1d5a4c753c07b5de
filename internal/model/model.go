package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&Snapshot{},
}

// Snapshot is one persisted characteristics record. Structured parts are
// stored as JSON columns; GearCount, WheelCount and Mass are kept as plain
// columns for querying.
type Snapshot struct {
	gorm.Model
	Name string `json:"name" gorm:"size:128;uniqueIndex"`

	Values            datatypes.JSON `json:"values" gorm:"column:scalar_values"`
	TurnRadius        datatypes.JSON `json:"turnRadius"`
	TimeFullSteer     datatypes.JSON `json:"timeFullSteer"`
	GearSwitchRatio   datatypes.JSON `json:"gearSwitchRatio"`
	GearPowerIncrease datatypes.JSON `json:"gearPowerIncrease"`
	WheelPositions    datatypes.JSON `json:"wheelPositions"`
	Skidding          datatypes.JSON `json:"skidding"`
	StartupBoost      datatypes.JSON `json:"startupBoost"`

	GearCount     int     `json:"gearCount"`
	WheelCount    int     `json:"wheelCount"`
	Mass          float64 `json:"mass"`
	FootprintArea float64 `json:"footprintArea"` // zero with fewer than three wheels
}

func (*Snapshot) TableName() string {
	return "kart_snapshots"
}
