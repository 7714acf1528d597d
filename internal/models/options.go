package models

// Reference data for the intake form. Records snapshot these by value at
// creation time, so edits here never rewrite history.

var ModelOptions = []ScooterModel{
	{ID: "1", Value: "BirdOne", Label: "Bird One"},
	{ID: "2", Value: "BirdThree", Label: "Bird Three"},
	{ID: "3", Value: "BirdBike", Label: "Bird Bike"},
	{ID: "4", Value: "eES600", Label: "e-Moob ES600"},
}

var DefaultVehicleStates = []VehicleState{
	{ID: "1", Value: "revision", Label: "Revision"},
	{ID: "2", Value: "offline", Label: "Offline"},
	{ID: "3", Value: "powered_off", Label: "Powered Off"},
	{ID: "4", Value: "hibernated", Label: "Hibernated"},
	{ID: "5", Value: "water_rain_damage", Label: "Water/Rain Damage"},
	{ID: "6", Value: "maintenance", Label: "Maintenance"},
	{ID: "7", Value: "fleet_handling_damage", Label: "Fleet Handling Damage"},
	{ID: "8", Value: "vandalized", Label: "Vandalized"},
	{ID: "9", Value: "submerged", Label: "Submerged"},
	{ID: "10", Value: "totaled", Label: "Totaled"},
}

var DefaultRepairOptions = []RepairItem{
	{ID: "1", Value: "brakes", Label: "Brakes"},
	{ID: "2", Value: "lights", Label: "Lights"},
	{ID: "3", Value: "wheels_front", Label: "Wheels(Front)"},
	{ID: "4", Value: "wheels_rear", Label: "Wheels(Rear)"},
	{ID: "5", Value: "side_covers", Label: "Side-Covers"},
	{ID: "6", Value: "fender_front", Label: "Fender(Front)"},
	{ID: "7", Value: "fender_rear", Label: "Fender(Rear)"},
	{ID: "8", Value: "steering_fork", Label: "Steering-Fork"},
	{ID: "9", Value: "handlebar_neck", Label: "Handlebar-Neck"},
	{ID: "10", Value: "chassis_hardware", Label: "Chassis-Hardware"},
	{ID: "11", Value: "branding_stickers", Label: "Branding-Stickers"},
	{ID: "12", Value: "suspension", Label: "Suspension"},
	{ID: "13", Value: "battery_lock", Label: "Battery Lock"},
	{ID: "14", Value: "display_unit", Label: "Display Unit"},
	{ID: "15", Value: "acceleration_motor_controller_drivetrain", Label: "Acceleration-Motor-Controller-Drivetrain"},
	{ID: "16", Value: "battery_low_threshold", Label: "Battery(Low Threshold)"},
	{ID: "17", Value: "charging_issues", Label: "Charging Issues"},
	{ID: "18", Value: "connectivity", Label: "Connectivity"},
	{ID: "19", Value: "other", Label: "Other"},
}

// FindModel looks up a scooter model by its stable value key.
func FindModel(value string) (ScooterModel, bool) {
	for _, m := range ModelOptions {
		if m.Value == value {
			return m, true
		}
	}
	return ScooterModel{}, false
}
