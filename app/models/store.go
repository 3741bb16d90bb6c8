package models

// Store is a physical grocery store location.
type Store struct {
	StoreID      uint   `gorm:"column:store_id;primaryKey" json:"store_id"`
	StoreName    string `gorm:"column:store_name;type:text;not null" json:"store_name"`
	LocationID   uint   `gorm:"column:location_id;not null" json:"location_id"`
	ManagerName  string `gorm:"column:manager_name;type:text" json:"manager_name,omitempty"`
	Phone        string `gorm:"column:phone;type:text" json:"phone,omitempty"`
	Email        string `gorm:"column:email;type:text" json:"email,omitempty"`
	OpeningHours string `gorm:"column:opening_hours;type:text" json:"opening_hours,omitempty"`

	Location *Location `gorm:"foreignKey:LocationID;references:LocationID" json:"location,omitempty"`
}

func (Store) TableName() string { return "stores" }

// Location is a serviceable city/region.
type Location struct {
	LocationID uint   `gorm:"column:location_id;primaryKey" json:"location_id"`
	City       string `gorm:"column:city;type:text;not null" json:"city"`
	State      string `gorm:"column:state;type:text;not null" json:"state"`
	ZipCode    *int64 `gorm:"column:zip_code" json:"zip_code,omitempty"`
	Address    string `gorm:"column:address;type:text" json:"address,omitempty"`
	Region     string `gorm:"column:region;type:text" json:"region,omitempty"`
}

func (Location) TableName() string { return "locations" }
