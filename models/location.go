package models

// Location is one physical salon branch.
type Location struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Area     string `json:"area"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
}

// Locations lists the deployed branches. The chat flow matches user input
// against these keys case-insensitively.
var Locations = []Location{
	{
		Key:      "kiambu",
		Name:     "Kiambu Road Bypass",
		Address:  "Next to Pro Swim",
		Area:     "Kiambu Road",
		Phone:    "0715 589 102",
		WhatsApp: "254715589102",
	},
	{
		Key:      "roysambu",
		Name:     "Roysambu, Lumumba Drive",
		Address:  "Opposite Nairobi Butchery, Flash Building 2nd Floor",
		Area:     "Roysambu",
		Phone:    "0700 235 466",
		WhatsApp: "254700235466",
	},
}

// LocationByKey returns the branch for key, or nil.
func LocationByKey(key string) *Location {
	for i := range Locations {
		if Locations[i].Key == key {
			return &Locations[i]
		}
	}
	return nil
}
