package inspection

// Group はチェック項目の区分です。
type Group string

const (
	GroupExterior Group = "exterior"
	GroupInterior Group = "interior"
	GroupBrake    Group = "brake"
)

// Phase は運行前点検・運行後点検の区別です。
type Phase string

const (
	PhasePreTrip  Phase = "pre_trip"
	PhasePostTrip Phase = "post_trip"
)

// ExteriorItem は車外点検項目です。
type ExteriorItem string

const (
	ExteriorLightsLenses     ExteriorItem = "lights-lenses"
	ExteriorTurnSignals      ExteriorItem = "turn-signals"
	ExteriorWindshieldWipers ExteriorItem = "windshield-wipers"
	ExteriorDoorOperation    ExteriorItem = "door-operation"
	ExteriorEmergencyDoors   ExteriorItem = "emergency-doors"
	ExteriorTiresWheels      ExteriorItem = "tires-wheels"
	ExteriorGlassMirrors     ExteriorItem = "glass-mirrors"
	ExteriorBodyDamage       ExteriorItem = "body-damage"
	ExteriorVehicleLeaks     ExteriorItem = "vehicle-leaks"
	ExteriorPassengerRamp    ExteriorItem = "passenger-ramp"
)

// InteriorItem は車内点検項目です。
type InteriorItem string

const (
	InteriorSpeedometer      InteriorItem = "speedometer"
	InteriorHeatersDefroster InteriorItem = "heaters-defroster"
	InteriorAirConditioner   InteriorItem = "air-conditioner"
	InteriorGauges           InteriorItem = "gauges"
	InteriorHornLights       InteriorItem = "horn-lights"
	InteriorOperatorSeat     InteriorItem = "operator-seat"
	InteriorPassengerSeat    InteriorItem = "passenger-seat"
	InteriorHandrails        InteriorItem = "handrails"
	InteriorRadio            InteriorItem = "radio"
	InteriorSteering         InteriorItem = "steering"
	InteriorFrontMonitor     InteriorItem = "front-monitor"
	InteriorFireExt          InteriorItem = "fire-ext"
	InteriorAccidentPacket   InteriorItem = "accident-packet"
	InteriorInsurance        InteriorItem = "insurance"
	InteriorWheelchairStraps InteriorItem = "wheelchair-straps"
	InteriorExhaustNoise     InteriorItem = "exhaust-noise"
	InteriorParkingBrake     InteriorItem = "parking-brake"
	InteriorClean            InteriorItem = "interior-clean"
	InteriorLights           InteriorItem = "interior-lights"
	InteriorDestinationSign  InteriorItem = "destination-sign"
	InteriorBackupAlarm      InteriorItem = "backup-alarm"
	InteriorRearMonitor      InteriorItem = "rear-monitor"
)

// BrakeItem はブレーキ点検項目です。
type BrakeItem string

const (
	BrakeCutInPressure      BrakeItem = "cut-in-pressure"
	BrakeCutOutPressure     BrakeItem = "cut-out-pressure"
	BrakeStaticPressOn      BrakeItem = "static-press-on"
	BrakeStaticPressOff     BrakeItem = "static-press-off"
	BrakeAppliedPressure    BrakeItem = "applied-pressure"
	BrakeLowPressureWarning BrakeItem = "low-pressure-warning"
	BrakeAutoPopOut         BrakeItem = "auto-pop-out"
	BrakeParkBrakeHold      BrakeItem = "park-brake-hold"
)

// HasReading は空気圧の計測値を記録する項目なら true を返します。
func (b BrakeItem) HasReading() bool {
	return b != BrakeParkBrakeHold
}

// Field は自由記述欄です。
type Field string

const (
	FieldBusNumber          Field = "bus_number"
	FieldDate               Field = "date"
	FieldTenEightTime       Field = "ten_eight_time"
	FieldOperatorName       Field = "operator_name"
	FieldOperatorSignature  Field = "operator_signature"
	FieldMilesDriven        Field = "miles_driven"
	FieldTimeWorked         Field = "time_worked"
	FieldBeginningMiles     Field = "beginning_miles"
	FieldEndMiles           Field = "end_miles"
	FieldBeginningTime      Field = "beginning_time"
	FieldEndTime            Field = "end_time"
	FieldOperatorComments   Field = "operator_comments"
	FieldNextDriverReviewed Field = "next_driver_reviewed"
	FieldTechComments       Field = "tech_comments"
	FieldTechSignature      Field = "tech_signature"
	FieldTechDate           Field = "tech_date"
)

// 表示順に並べた項目一覧です。
var (
	ExteriorItems = []ExteriorItem{
		ExteriorLightsLenses, ExteriorTurnSignals, ExteriorWindshieldWipers, ExteriorDoorOperation,
		ExteriorEmergencyDoors, ExteriorTiresWheels, ExteriorGlassMirrors, ExteriorBodyDamage,
		ExteriorVehicleLeaks, ExteriorPassengerRamp,
	}
	InteriorItems = []InteriorItem{
		InteriorSpeedometer, InteriorHeatersDefroster, InteriorAirConditioner, InteriorGauges,
		InteriorHornLights, InteriorOperatorSeat, InteriorPassengerSeat, InteriorHandrails,
		InteriorRadio, InteriorSteering, InteriorFrontMonitor, InteriorFireExt,
		InteriorAccidentPacket, InteriorInsurance, InteriorWheelchairStraps, InteriorExhaustNoise,
		InteriorParkingBrake, InteriorClean, InteriorLights, InteriorDestinationSign,
		InteriorBackupAlarm, InteriorRearMonitor,
	}
	BrakeItems = []BrakeItem{
		BrakeCutInPressure, BrakeCutOutPressure, BrakeStaticPressOn, BrakeStaticPressOff,
		BrakeAppliedPressure, BrakeLowPressureWarning, BrakeAutoPopOut, BrakeParkBrakeHold,
	}
	Fields = []Field{
		FieldBusNumber, FieldDate, FieldTenEightTime, FieldOperatorName, FieldOperatorSignature,
		FieldMilesDriven, FieldTimeWorked, FieldBeginningMiles, FieldEndMiles, FieldBeginningTime,
		FieldEndTime, FieldOperatorComments, FieldNextDriverReviewed, FieldTechComments,
		FieldTechSignature, FieldTechDate,
	}
)

// Labels は項目 ID と画面表示名の対応です。末尾の * は必須点検項目を示します。
var Labels = map[string]string{
	string(ExteriorLightsLenses):     "All lights & lenses*",
	string(ExteriorTurnSignals):      "Turn signals & 4-way flashers*",
	string(ExteriorWindshieldWipers): "Windshield wipers & washers*",
	string(ExteriorDoorOperation):    "Door operation, seals intact/tight",
	string(ExteriorEmergencyDoors):   "Emergency door/windows",
	string(ExteriorTiresWheels):      "Tires, wheels & lugnuts*",
	string(ExteriorGlassMirrors):     "Glass & mirrors*",
	string(ExteriorBodyDamage):       "Body damage/lettering/decals",
	string(ExteriorVehicleLeaks):     "Under vehicle leaks*",
	string(ExteriorPassengerRamp):    "Passenger ramp operation",

	string(InteriorSpeedometer):      "Speedometer/instruments",
	string(InteriorHeatersDefroster): "Heaters, defroster & ventilation",
	string(InteriorAirConditioner):   "Air conditioner",
	string(InteriorGauges):           "All gauges*",
	string(InteriorHornLights):       "Horn/dashlights/hi/lo/indicator*",
	string(InteriorOperatorSeat):     "Operator seat operation & belt",
	string(InteriorPassengerSeat):    "Passenger seat securement",
	string(InteriorHandrails):        "Handrails",
	string(InteriorRadio):            "2-way radio operation",
	string(InteriorSteering):         "Steering operation",
	string(InteriorFrontMonitor):     "Front Monitor*",
	string(InteriorFireExt):          "Fire Ext./Triangles/First aid kit",
	string(InteriorAccidentPacket):   "Accident Packet",
	string(InteriorInsurance):        "Vehicle Insurance & Reg.",
	string(InteriorWheelchairStraps): "Wheelchair securement straps",
	string(InteriorExhaustNoise):     "Exhaust noise",
	string(InteriorParkingBrake):     "Parking brake",
	string(InteriorClean):            "Interior clean",
	string(InteriorLights):           "Interior lights",
	string(InteriorDestinationSign):  "Destination sign",
	string(InteriorBackupAlarm):      "Backup alarm",
	string(InteriorRearMonitor):      "Rear Monitor*",

	string(BrakeCutInPressure):      "Cut In pressure",
	string(BrakeCutOutPressure):     "Cut out pressure",
	string(BrakeStaticPressOn):      "Static press, loss P/B on",
	string(BrakeStaticPressOff):     "Static press, loss P/B off",
	string(BrakeAppliedPressure):    "Applied pressure loss",
	string(BrakeLowPressureWarning): "Low pressure warning*",
	string(BrakeAutoPopOut):         "Auto pop out (park brake)*",
	string(BrakeParkBrakeHold):      "Park brake hold",
}

func isExteriorItem(item ExteriorItem) bool {
	for _, known := range ExteriorItems {
		if known == item {
			return true
		}
	}
	return false
}

func isInteriorItem(item InteriorItem) bool {
	for _, known := range InteriorItems {
		if known == item {
			return true
		}
	}
	return false
}

func isBrakeItem(item BrakeItem) bool {
	for _, known := range BrakeItems {
		if known == item {
			return true
		}
	}
	return false
}

func isField(f Field) bool {
	for _, known := range Fields {
		if known == f {
			return true
		}
	}
	return false
}

func isValidPhase(p Phase) bool {
	switch p {
	case PhasePreTrip, PhasePostTrip:
		return true
	default:
		return false
	}
}
