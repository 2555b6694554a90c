package catalog

import "math"

// Definitions returns the built-in table followed by the SI-prefixed variants
// of the metric units.
func Definitions() []Entry {
	entries := make([]Entry, 0, len(definitions)+len(metricUnits)*len(siPrefixes))
	entries = append(entries, definitions...)
	return append(entries, prefixed(definitions)...)
}

var definitions = concat(
	baseDimensions,
	baseUnits,
	angles,
	information,
	ratios,
	length,
	mass,
	timeUnits,
	temperature,
	area,
	volume,
	frequency,
	velocity,
	acceleration,
	force,
	energy,
	power,
	mechanics,
	pressure,
	substance,
	electromagnetism,
	radiation,
	photometry,
	uscsInternational,
	uscsSurvey,
	uscsVolume,
	avoirdupois,
	troyApothecary,
	imperialVolume,
	printer,
)

var baseDimensions = []Entry{
	BaseDimension("length"),
	BaseDimension("mass"),
	BaseDimension("time"),
	BaseDimension("current"),
	BaseDimension("temperature"),
	BaseDimension("amount"),
	BaseDimension("luminosity"),
	BaseDimension("information"),
	DerivedDimension("[dimensionless]"),
}

var baseUnits = []Entry{
	BaseUnit("meter", "[length]"),
	BaseUnit("kilogram", "[mass]"),
	BaseUnit("second", "[time]"),
	BaseUnit("ampere", "[current]"),
	BaseUnit("kelvin", "[temperature]"),
	BaseUnit("mole", "[amount]"),
	BaseUnit("candela", "[luminosity]"),
	BaseUnit("bit", "[information]"),
	BaseUnit("radian", "[dimensionless]"),
	BaseUnit("count", "[dimensionless]"),
}

var angles = []Entry{
	DerivedUnit("turn", "[dimensionless]", 2*math.Pi, "radian"),
	DerivedUnit("degree", "[dimensionless]", math.Pi/180, "radian"),
	DerivedUnit("arcminute", "[dimensionless]", math.Pi/(180*60), "radian"),
	DerivedUnit("arcsecond", "[dimensionless]", math.Pi/(180*60*60), "radian"),
	DerivedUnit("milliarcsecond", "[dimensionless]", math.Pi/(180*60*60*1000), "radian"),
	DerivedUnit("grade", "[dimensionless]", math.Pi/200, "radian"),
	DerivedUnit("mil", "[dimensionless]", math.Pi/3200, "radian"),
	DerivedUnit("steradian", "[dimensionless]", 1, "radian"),
	DerivedUnit("square_degree", "[dimensionless]", (math.Pi/180)*(math.Pi/180), "steradian"),
}

var information = []Entry{
	DerivedUnit("byte", "[information]", 8, "bit"),
	DerivedUnit("nibble", "[information]", 4, "bit"),
	DerivedDimension("[information_rate]", F("[information]", 1), F("[time]", -1)),
	CompositeUnit("", F("bit", 1), F("second", -1)),
	DerivedUnit("baud", "[information_rate]", 1, "bit/second"),
}

var ratios = []Entry{
	DerivedUnit("percent", "[dimensionless]", 0.01, "count"),
	DerivedUnit("permille", "[dimensionless]", 0.001, "count"),
	DerivedUnit("ppm", "[dimensionless]", 1e-6, "count"),
	DerivedUnit("ppb", "[dimensionless]", 1e-9, "count"),
}

var length = []Entry{
	DerivedUnit("angstrom", "[length]", 1e-10, "meter"),
	DerivedUnit("micron", "[length]", 1e-6, "meter"),
	DerivedUnit("fermi", "[length]", 1e-15, "meter"),
	DerivedUnit("light_year", "[length]", 9.4607e15, "meter"),
	DerivedUnit("astronomical_unit", "[length]", 1.495978707e11, "meter"),
	DerivedUnit("parsec", "[length]", 3.085677581e16, "meter"),
	DerivedUnit("nautical_mile", "[length]", 1852, "meter"),
	DerivedUnit("bohr", "[length]", 5.29177210903e-11, "meter"),
	DerivedUnit("planck_length", "[length]", 1.616255e-35, "meter"),
}

var mass = []Entry{
	DerivedUnit("gram", "[mass]", 1e-3, "kilogram"),
	DerivedUnit("metric_ton", "[mass]", 1e3, "kilogram"),
	DerivedUnit("unified_atomic_mass_unit", "[mass]", 1.66053906660e-27, "kilogram"),
	DerivedUnit("dalton", "[mass]", 1.66053906660e-27, "kilogram"),
	DerivedUnit("grain", "[mass]", 64.79891e-6, "kilogram"),
	DerivedUnit("gamma_mass", "[mass]", 1e-9, "kilogram"),
	DerivedUnit("carat", "[mass]", 200e-6, "kilogram"),
	DerivedUnit("planck_mass", "[mass]", 2.176434e-8, "kilogram"),
}

var timeUnits = []Entry{
	DerivedUnit("minute", "[time]", 60, "second"),
	DerivedUnit("hour", "[time]", 3600, "second"),
	DerivedUnit("day", "[time]", 86400, "second"),
	DerivedUnit("week", "[time]", 604800, "second"),
	DerivedUnit("fortnight", "[time]", 1209600, "second"),
	DerivedUnit("year", "[time]", 31557600, "second"),
	DerivedUnit("month", "[time]", 2629800, "second"),
	DerivedUnit("century", "[time]", 3155760000, "second"),
	DerivedUnit("millennium", "[time]", 31557600000, "second"),
	DerivedUnit("eon", "[time]", 3.15576e16, "second"),
	DerivedUnit("shake", "[time]", 1e-8, "second"),
	DerivedUnit("svedberg", "[time]", 1e-13, "second"),
	DerivedUnit("atomic_unit_of_time", "[time]", 2.4188843265857e-17, "second"),
	DerivedUnit("gregorian_year", "[time]", 31556952, "second"),
	DerivedUnit("sidereal_year", "[time]", 31558149.7632, "second"),
	DerivedUnit("tropical_year", "[time]", 31556925.216, "second"),
	DerivedUnit("common_year", "[time]", 31536000, "second"),
	DerivedUnit("leap_year", "[time]", 31622400, "second"),
	DerivedUnit("sidereal_day", "[time]", 86164.0905, "second"),
	DerivedUnit("synodic_month", "[time]", 2551442.592, "second"),
	DerivedUnit("planck_time", "[time]", 5.39116e-44, "second"),
}

// Celsius and Fahrenheit are registered so they can be named, but every
// conversion through them reports ErrOffsetNotSupported.
var temperature = []Entry{
	OffsetUnit("degree_Celsius", "[temperature]", 1, 273.15, "kelvin"),
	OffsetUnit("degree_Fahrenheit", "[temperature]", 5.0/9.0, 459.67*5.0/9.0, "kelvin"),
	DerivedUnit("degree_Rankine", "[temperature]", 5.0/9.0, "kelvin"),
}

var area = []Entry{
	DerivedDimension("[area]", F("[length]", 2)),
	CompositeUnit("", F("meter", 2)),
	DerivedUnit("are", "[area]", 100, "meter^2"),
	DerivedUnit("barn", "[area]", 1e-28, "meter^2"),
	DerivedUnit("darcy", "[area]", 9.869233e-13, "meter^2"),
	DerivedUnit("hectare", "[area]", 10000, "meter^2"),
}

var volume = []Entry{
	DerivedDimension("[volume]", F("[length]", 3)),
	CompositeUnit("", F("meter", 3)),
	DerivedUnit("liter", "[volume]", 1e-3, "meter^3"),
	DerivedUnit("cubic_centimeter", "[volume]", 1e-6, "meter^3"),
	DerivedUnit("lambda", "[volume]", 1e-9, "meter^3"),
	DerivedUnit("stere", "[volume]", 1, "meter^3"),
	DerivedDimension("[volumetric_flow_rate]", F("[volume]", 1), F("[time]", -1)),
	CompositeUnit("", F("meter", 3), F("second", -1)),
	DerivedUnit("sverdrup", "[volumetric_flow_rate]", 1e6, "meter^3/second"),
}

var frequency = []Entry{
	DerivedDimension("[frequency]", F("[time]", -1)),
	CompositeUnit("", F("second", -1)),
	DerivedUnit("hertz", "[frequency]", 1, "second^-1"),
	DerivedUnit("revolutions_per_minute", "[frequency]", 1.0/60.0, "hertz"),
	DerivedUnit("revolutions_per_second", "[frequency]", 1, "hertz"),
	DerivedUnit("counts_per_second", "[frequency]", 1, "hertz"),
	DerivedDimension("[wavenumber]", F("[length]", -1)),
	CompositeUnit("", F("meter", -1)),
	DerivedUnit("reciprocal_centimeter", "[wavenumber]", 100, "meter^-1"),
}

var velocity = []Entry{
	DerivedDimension("[velocity]", F("[length]", 1), F("[time]", -1)),
	CompositeUnit("", F("meter", 1), F("second", -1)),
	DerivedUnit("knot", "[velocity]", 1852.0/3600.0, "meter/second"),
	DerivedUnit("mile_per_hour", "[velocity]", 1609.344/3600.0, "meter/second"),
	DerivedUnit("kilometer_per_hour", "[velocity]", 1000.0/3600.0, "meter/second"),
	DerivedUnit("kilometer_per_second", "[velocity]", 1000, "meter/second"),
	DerivedUnit("meter_per_second", "[velocity]", 1, "meter/second"),
	DerivedUnit("foot_per_second", "[velocity]", 0.3048, "meter/second"),
	DerivedUnit("speed_of_light", "[velocity]", 299792458, "meter/second"),
}

var acceleration = []Entry{
	DerivedDimension("[acceleration]", F("[velocity]", 1), F("[time]", -1)),
	CompositeUnit("", F("meter", 1), F("second", -2)),
	DerivedUnit("galileo", "[acceleration]", 0.01, "meter/second^2"),
	DerivedUnit("standard_gravity", "[acceleration]", 9.80665, "meter/second^2"),
}

var force = []Entry{
	DerivedDimension("[force]", F("[mass]", 1), F("[acceleration]", 1)),
	CompositeUnit("", F("kilogram", 1), F("meter", 1), F("second", -2)),
	DerivedUnit("newton", "[force]", 1, "kilogram*meter/second^2"),
	DerivedUnit("dyne", "[force]", 1e-5, "newton"),
	DerivedUnit("force_kilogram", "[force]", 9.80665, "newton"),
	DerivedUnit("force_gram", "[force]", 9.80665e-3, "newton"),
	DerivedUnit("force_metric_ton", "[force]", 9.80665e3, "newton"),
	DerivedUnit("force_pound", "[force]", 4.4482216152605, "newton"),
	DerivedUnit("kip", "[force]", 1000, "force_pound"),
	DerivedUnit("atomic_unit_of_force", "[force]", 8.23872206e-8, "newton"),
}

var energy = []Entry{
	DerivedDimension("[energy]", F("[force]", 1), F("[length]", 1)),
	CompositeUnit("", F("newton", 1), F("meter", 1)),
	DerivedUnit("joule", "[energy]", 1, "newton*meter"),
	DerivedUnit("erg", "[energy]", 1e-7, "joule"),
	DerivedUnit("watt_hour", "[energy]", 3600, "joule"),
	DerivedUnit("electron_volt", "[energy]", 1.602176634e-19, "joule"),
	DerivedUnit("rydberg", "[energy]", 2.1798723611035e-18, "joule"),
	DerivedUnit("hartree", "[energy]", 4.3597447222071e-18, "joule"),
	DerivedUnit("calorie", "[energy]", 4.184, "joule"),
	DerivedUnit("international_calorie", "[energy]", 4.1868, "joule"),
	DerivedUnit("fifteen_degree_calorie", "[energy]", 4.1855, "joule"),
	DerivedUnit("british_thermal_unit", "[energy]", 1055.056, "joule"),
	DerivedUnit("international_british_thermal_unit", "[energy]", 1055.05585262, "joule"),
	DerivedUnit("thermochemical_british_thermal_unit", "[energy]", 1054.35026444, "joule"),
	DerivedUnit("quadrillion_Btu", "[energy]", 1.055056e18, "joule"),
	DerivedUnit("therm", "[energy]", 1.055056e8, "joule"),
	DerivedUnit("US_therm", "[energy]", 1.054804e8, "joule"),
	DerivedUnit("ton_TNT", "[energy]", 4.184e9, "joule"),
	DerivedUnit("tonne_of_oil_equivalent", "[energy]", 4.1868e10, "joule"),
	DerivedUnit("atmosphere_liter", "[energy]", 101.325, "joule"),
}

var power = []Entry{
	DerivedDimension("[power]", F("[energy]", 1), F("[time]", -1)),
	CompositeUnit("", F("joule", 1), F("second", -1)),
	DerivedUnit("watt", "[power]", 1, "joule/second"),
	DerivedUnit("volt_ampere", "[power]", 1, "watt"),
	DerivedUnit("horsepower", "[power]", 745.69987158227022, "watt"),
	DerivedUnit("boiler_horsepower", "[power]", 9812.5, "watt"),
	DerivedUnit("metric_horsepower", "[power]", 735.49875, "watt"),
	DerivedUnit("electrical_horsepower", "[power]", 746, "watt"),
	DerivedUnit("refrigeration_ton", "[power]", 3516.8528420667, "watt"),
	DerivedUnit("cooling_tower_ton", "[power]", 4396.0660525834, "watt"),
	DerivedUnit("standard_liter_per_minute", "[power]", 1.68875, "watt"),
}

var mechanics = []Entry{
	DerivedDimension("[momentum]", F("[length]", 1), F("[mass]", 1), F("[time]", -1)),
	CompositeUnit("", F("kilogram", 1), F("meter", 1), F("second", -1)),
	DerivedDimension("[density]", F("[mass]", 1), F("[volume]", -1)),
	CompositeUnit("", F("kilogram", 1), F("liter", -1)),
	DerivedUnit("water", "[density]", 1, "kilogram/liter"),
	DerivedUnit("mercury", "[density]", 13595.1, "kilogram/liter"),
	DerivedUnit("mercury_60F", "[density]", 13556.8, "kilogram/liter"),
	DerivedUnit("water_39F", "[density]", 0.999972, "kilogram/liter"),
	DerivedUnit("water_60F", "[density]", 0.999001, "kilogram/liter"),
	DerivedDimension("[torque]", F("[force]", 1), F("[length]", 1)),
	DerivedUnit("foot_pound", "[torque]", 1.3558179483314004, "newton*meter"),
}

var pressure = []Entry{
	DerivedDimension("[pressure]", F("[force]", 1), F("[area]", -1)),
	CompositeUnit("", F("newton", 1), F("meter", -2)),
	DerivedUnit("pascal", "[pressure]", 1, "newton/meter^2"),
	DerivedUnit("barye", "[pressure]", 0.1, "pascal"),
	DerivedUnit("bar", "[pressure]", 1e5, "pascal"),
	DerivedUnit("atmosphere", "[pressure]", 101325, "pascal"),
	DerivedUnit("technical_atmosphere", "[pressure]", 98066.5, "pascal"),
	DerivedUnit("torr", "[pressure]", 133.3223684211, "pascal"),
	DerivedUnit("pound_force_per_square_inch", "[pressure]", 6894.757293168, "pascal"),
	DerivedUnit("kip_per_square_inch", "[pressure]", 6894757.293168, "pascal"),
	DerivedUnit("millimeter_Hg", "[pressure]", 133.322387415, "pascal"),
	DerivedUnit("centimeter_Hg", "[pressure]", 1333.22387415, "pascal"),
	DerivedUnit("inch_Hg", "[pressure]", 3386.389, "pascal"),
	DerivedUnit("inch_Hg_60F", "[pressure]", 3376.85, "pascal"),
	DerivedUnit("inch_H2O_39F", "[pressure]", 249.082, "pascal"),
	DerivedUnit("inch_H2O_60F", "[pressure]", 248.84, "pascal"),
	DerivedUnit("foot_H2O", "[pressure]", 2989.06692, "pascal"),
	DerivedUnit("centimeter_H2O", "[pressure]", 98.0665, "pascal"),
	DerivedUnit("sound_pressure_level", "[pressure]", 20e-6, "pascal"),
	DerivedDimension("[viscosity]", F("[pressure]", 1), F("[time]", 1)),
	CompositeUnit("", F("pascal", 1), F("second", 1)),
	DerivedUnit("poise", "[viscosity]", 0.1, "pascal*second"),
	DerivedUnit("reyn", "[viscosity]", 6894.757293168, "pascal*second"),
	DerivedDimension("[kinematic_viscosity]", F("[area]", 1), F("[time]", -1)),
	CompositeUnit("", F("meter", 2), F("second", -1)),
	DerivedUnit("stokes", "[kinematic_viscosity]", 1e-4, "meter^2/second"),
	DerivedDimension("[fluidity]", F("[viscosity]", -1)),
	CompositeUnit("", F("poise", -1)),
	DerivedUnit("rhe", "[fluidity]", 1, "poise^-1"),
}

var substance = []Entry{
	DerivedDimension("[substance]", F("[amount]", 1)),
	DerivedUnit("particle", "[substance]", 1/6.02214076e23, "mole"),
	DerivedDimension("[concentration]", F("[substance]", 1), F("[volume]", -1)),
	CompositeUnit("", F("mole", 1), F("liter", -1)),
	DerivedUnit("molar", "[concentration]", 1, "mole/liter"),
	DerivedDimension("[activity]", F("[substance]", 1), F("[time]", -1)),
	CompositeUnit("", F("mole", 1), F("second", -1)),
	DerivedUnit("katal", "[activity]", 1, "mole/second"),
	DerivedUnit("enzyme_unit", "[activity]", 1.6666666666666667e-8, "mole/second"),
	DerivedDimension("[entropy]", F("[energy]", 1), F("[temperature]", -1)),
	CompositeUnit("", F("joule", 1), F("kelvin", -1)),
	DerivedUnit("clausius", "[entropy]", 4.184, "joule/kelvin"),
	DerivedDimension("[molar_entropy]", F("[entropy]", 1), F("[substance]", -1)),
	CompositeUnit("", F("joule", 1), F("kelvin", -1), F("mole", -1)),
	DerivedUnit("entropy_unit", "[molar_entropy]", 4.184, "joule/kelvin/mole"),
}

var electromagnetism = []Entry{
	DerivedUnit("biot", "[current]", 10, "ampere"),
	DerivedUnit("abampere", "[current]", 10, "ampere"),
	DerivedUnit("atomic_unit_of_current", "[current]", 6.623618183e-3, "ampere"),
	DerivedUnit("mean_international_ampere", "[current]", 1.00034, "ampere"),
	DerivedUnit("US_international_ampere", "[current]", 1.00033, "ampere"),

	DerivedDimension("[charge]", F("[current]", 1), F("[time]", 1)),
	CompositeUnit("", F("ampere", 1), F("second", 1)),
	DerivedUnit("coulomb", "[charge]", 1, "ampere*second"),
	DerivedUnit("abcoulomb", "[charge]", 10, "coulomb"),
	DerivedUnit("faraday", "[charge]", 96485.33212, "coulomb"),
	DerivedUnit("ampere_hour", "[charge]", 3600, "coulomb"),

	DerivedDimension("[electric_potential]", F("[energy]", 1), F("[charge]", -1)),
	CompositeUnit("volt", F("joule", 1), F("coulomb", -1)),
	DerivedUnit("abvolt", "[electric_potential]", 1e-8, "volt"),
	DerivedUnit("mean_international_volt", "[electric_potential]", 1.00034, "volt"),
	DerivedUnit("US_international_volt", "[electric_potential]", 1.00033, "volt"),

	DerivedDimension("[electric_field]", F("[electric_potential]", 1), F("[length]", -1)),
	CompositeUnit("", F("volt", 1), F("meter", -1)),
	DerivedUnit("atomic_unit_of_electric_field", "[electric_field]", 5.14220652e11, "volt/meter"),
	DerivedDimension("[electric_displacement_field]", F("[charge]", 1), F("[area]", -1)),
	CompositeUnit("", F("coulomb", 1), F("meter", -2)),

	DerivedDimension("[resistance]", F("[electric_potential]", 1), F("[current]", -1)),
	CompositeUnit("ohm", F("volt", 1), F("ampere", -1)),
	DerivedUnit("abohm", "[resistance]", 1e-9, "ohm"),
	DerivedUnit("mean_international_ohm", "[resistance]", 1.00049, "ohm"),
	DerivedUnit("US_international_ohm", "[resistance]", 1.000495, "ohm"),
	DerivedDimension("[resistivity]", F("[resistance]", 1), F("[length]", 1)),
	CompositeUnit("", F("ohm", 1), F("meter", 1)),

	DerivedDimension("[conductance]", F("[current]", 1), F("[electric_potential]", -1)),
	CompositeUnit("siemens", F("ampere", 1), F("volt", -1)),
	DerivedUnit("absiemens", "[conductance]", 1e9, "siemens"),

	DerivedDimension("[capacitance]", F("[charge]", 1), F("[electric_potential]", -1)),
	CompositeUnit("farad", F("coulomb", 1), F("volt", -1)),
	DerivedUnit("abfarad", "[capacitance]", 1e9, "farad"),

	DerivedDimension("[magnetic_flux]", F("[electric_potential]", 1), F("[time]", 1)),
	CompositeUnit("weber", F("volt", 1), F("second", 1)),
	DerivedUnit("unit_pole", "[magnetic_flux]", 1.2566370614359173e-6, "weber"),

	DerivedDimension("[inductance]", F("[magnetic_flux]", 1), F("[current]", -1)),
	CompositeUnit("henry", F("weber", 1), F("ampere", -1)),
	DerivedUnit("abhenry", "[inductance]", 1e-9, "henry"),

	DerivedDimension("[magnetic_field]", F("[magnetic_flux]", 1), F("[area]", -1)),
	CompositeUnit("tesla", F("weber", 1), F("meter", -2)),
	DerivedUnit("gamma", "[magnetic_field]", 1e-9, "tesla"),
	DerivedUnit("gauss", "[magnetic_field]", 1e-4, "tesla"),

	DerivedDimension("[magnetomotive_force]", F("[current]", 1)),
	DerivedUnit("ampere_turn", "[magnetomotive_force]", 1, "ampere"),
	DerivedUnit("biot_turn", "[magnetomotive_force]", 10, "ampere"),
	DerivedUnit("gilbert", "[magnetomotive_force]", 0.7957747154594768, "ampere"),
	DerivedDimension("[magnetic_field_strength]", F("[current]", 1), F("[length]", -1)),
	CompositeUnit("", F("ampere", 1), F("meter", -1)),

	DerivedDimension("[electric_dipole]", F("[charge]", 1), F("[length]", 1)),
	CompositeUnit("", F("coulomb", 1), F("meter", 1)),
	DerivedUnit("debye", "[electric_dipole]", 3.3356409519815204e-30, "coulomb*meter"),
	DerivedDimension("[electric_quadrupole]", F("[charge]", 1), F("[area]", 1)),
	CompositeUnit("", F("coulomb", 1), F("meter", 2)),
	DerivedUnit("buckingham", "[electric_quadrupole]", 3.3356409519815204e-40, "coulomb*meter^2"),
	DerivedDimension("[magnetic_dipole]", F("[current]", 1), F("[area]", 1)),
	CompositeUnit("", F("ampere", 1), F("meter", 2)),
	DerivedUnit("bohr_magneton", "[magnetic_dipole]", 9.274009994e-24, "ampere*meter^2"),
	DerivedUnit("nuclear_magneton", "[magnetic_dipole]", 5.050783699e-27, "ampere*meter^2"),
}

var radiation = []Entry{
	DerivedDimension("[radiation]", F("[time]", -1)),
	CompositeUnit("", F("count", 1), F("second", -1)),
	DerivedUnit("becquerel", "[radiation]", 1, "count/second"),
	DerivedUnit("curie", "[radiation]", 3.7e10, "becquerel"),
	DerivedUnit("rutherford", "[radiation]", 1e6, "becquerel"),
	DerivedDimension("[absorbed_dose]", F("[energy]", 1), F("[mass]", -1)),
	CompositeUnit("", F("joule", 1), F("kilogram", -1)),
	DerivedUnit("gray", "[absorbed_dose]", 1, "joule/kilogram"),
	DerivedUnit("sievert", "[absorbed_dose]", 1, "joule/kilogram"),
	DerivedUnit("rads", "[absorbed_dose]", 0.01, "gray"),
	DerivedUnit("rem", "[absorbed_dose]", 0.01, "sievert"),
	DerivedDimension("[exposure]", F("[charge]", 1), F("[mass]", -1)),
	CompositeUnit("", F("coulomb", 1), F("kilogram", -1)),
	DerivedUnit("roentgen", "[exposure]", 2.58e-4, "coulomb/kilogram"),
	DerivedDimension("[heat_transmission]", F("[energy]", 1), F("[area]", -1)),
	CompositeUnit("", F("joule", 1), F("meter", -2)),
	DerivedUnit("peak_sun_hour", "[heat_transmission]", 3.6e6, "joule/meter^2"),
	DerivedUnit("langley", "[heat_transmission]", 41840, "joule/meter^2"),
	DerivedDimension("[intensity]", F("[power]", 1), F("[area]", -1)),
	CompositeUnit("", F("watt", 1), F("meter", -2)),
	DerivedUnit("atomic_unit_of_intensity", "[intensity]", 3.50944758e16, "watt/meter^2"),
}

var photometry = []Entry{
	DerivedDimension("[luminance]", F("[luminosity]", 1), F("[area]", -1)),
	CompositeUnit("", F("candela", 1), F("meter", -2)),
	DerivedUnit("nit", "[luminance]", 1, "candela/meter^2"),
	DerivedUnit("stilb", "[luminance]", 1e4, "candela/meter^2"),
	DerivedUnit("lambert", "[luminance]", 3183.098861837907, "candela/meter^2"),
	DerivedDimension("[luminous_flux]", F("[luminosity]", 1)),
	CompositeUnit("", F("candela", 1), F("steradian", 1)),
	DerivedUnit("lumen", "[luminous_flux]", 1, "candela*steradian"),
	DerivedDimension("[illuminance]", F("[luminous_flux]", 1), F("[area]", -1)),
	CompositeUnit("", F("lumen", 1), F("meter", -2)),
	DerivedUnit("lux", "[illuminance]", 1, "lumen/meter^2"),
	DerivedDimension("[refractive_index]"),
	BaseUnit("refractive_index_unit", "[refractive_index]"),
}

var uscsInternational = []Entry{
	DerivedUnit("yard", "[length]", 0.9144, "meter"),
	DerivedUnit("inch", "[length]", 1.0/36.0, "yard"),
	DerivedUnit("thou", "[length]", 1e-3, "inch"),
	DerivedUnit("hand", "[length]", 4, "inch"),
	DerivedUnit("foot", "[length]", 1.0/3.0, "yard"),
	DerivedUnit("mile", "[length]", 1760, "yard"),
	CompositeUnit("mil_length", F("thou", 1)),
	CompositeUnit("", F("mil_length", 2)),
	DerivedUnit("circular_mil", "[area]", math.Pi/4, "mil_length^2"),
	CompositeUnit("square_inch", F("inch", 2)),
	CompositeUnit("square_foot", F("foot", 2)),
	CompositeUnit("square_yard", F("yard", 2)),
	CompositeUnit("square_mile", F("mile", 2)),
	CompositeUnit("cubic_inch", F("inch", 3)),
	CompositeUnit("cubic_foot", F("foot", 3)),
	CompositeUnit("cubic_yard", F("yard", 3)),
}

var uscsSurvey = []Entry{
	DerivedUnit("survey_foot", "[length]", 1200.0/3937.0, "meter"),
	DerivedUnit("rod", "[length]", 16.5, "survey_foot"),
	DerivedUnit("chain", "[length]", 4, "rod"),
	DerivedUnit("link", "[length]", 1e-2, "chain"),
	DerivedUnit("fathom", "[length]", 6, "survey_foot"),
	DerivedUnit("furlong", "[length]", 40, "rod"),
	DerivedUnit("cables_length", "[length]", 120, "fathom"),
	DerivedUnit("survey_mile", "[length]", 5280, "survey_foot"),
	DerivedUnit("league", "[length]", 3, "survey_mile"),
	CompositeUnit("square_rod", F("rod", 2)),
	CompositeUnit("square_chain", F("chain", 2)),
	CompositeUnit("square_survey_mile", F("survey_mile", 2)),
	CompositeUnit("square_league", F("league", 2)),
	DerivedUnit("acre", "[area]", 10, "square_chain"),
	CompositeUnit("acre_foot", F("acre", 1), F("survey_foot", 1)),
}

var uscsVolume = []Entry{
	DerivedUnit("bushel", "[volume]", 2150.42, "cubic_inch"),
	DerivedUnit("dry_pint", "[volume]", 1.0/64.0, "bushel"),
	DerivedUnit("dry_quart", "[volume]", 1.0/32.0, "bushel"),
	DerivedUnit("dry_gallon", "[volume]", 1.0/8.0, "bushel"),
	DerivedUnit("peck", "[volume]", 1.0/4.0, "bushel"),
	DerivedUnit("dry_barrel", "[volume]", 7056, "cubic_inch"),
	CompositeUnit("board_foot", F("foot", 2), F("inch", 1)),

	DerivedUnit("gallon", "[volume]", 231, "cubic_inch"),
	DerivedUnit("quart", "[volume]", 1.0/4.0, "gallon"),
	DerivedUnit("pint", "[volume]", 1.0/2.0, "quart"),
	DerivedUnit("fifth", "[volume]", 1.0/5.0, "gallon"),
	DerivedUnit("gill", "[volume]", 1.0/4.0, "pint"),
	DerivedUnit("fluid_ounce", "[volume]", 1.0/16.0, "pint"),
	DerivedUnit("fluid_dram", "[volume]", 1.0/128.0, "pint"),
	DerivedUnit("minim", "[volume]", 1.0/7680.0, "pint"),

	DerivedUnit("teaspoon", "[volume]", 1.0/6.0, "fluid_ounce"),
	DerivedUnit("tablespoon", "[volume]", 1.0/2.0, "fluid_ounce"),
	DerivedUnit("shot", "[volume]", 3, "tablespoon"),
	DerivedUnit("cup", "[volume]", 1.0/2.0, "pint"),
	DerivedUnit("barrel", "[volume]", 31.5, "gallon"),
	DerivedUnit("oil_barrel", "[volume]", 42, "gallon"),
	DerivedUnit("beer_barrel", "[volume]", 31, "gallon"),
	DerivedUnit("hogshead", "[volume]", 63, "gallon"),
}

var avoirdupois = []Entry{
	DerivedUnit("pound", "[mass]", 7000, "grain"),
	DerivedUnit("dram", "[mass]", 1.0/256.0, "pound"),
	DerivedUnit("ounce", "[mass]", 1.0/16.0, "pound"),
	DerivedUnit("stone", "[mass]", 14, "pound"),
	DerivedUnit("quarter", "[mass]", 28, "stone"),
	DerivedUnit("bag", "[mass]", 94, "pound"),
	DerivedUnit("hundredweight", "[mass]", 100, "pound"),
	DerivedUnit("long_hundredweight", "[mass]", 112, "pound"),
	DerivedUnit("ton", "[mass]", 2000, "pound"),
	DerivedUnit("long_ton", "[mass]", 2240, "pound"),
	DerivedUnit("UK_hundredweight", "[mass]", 1, "long_hundredweight"),
	DerivedUnit("UK_ton", "[mass]", 1, "long_ton"),
	DerivedUnit("US_hundredweight", "[mass]", 1, "hundredweight"),
	DerivedUnit("US_ton", "[mass]", 1, "ton"),
	CompositeUnit("", F("pound", 1), F("second", 2), F("foot", -1)),
	CompositeUnit("", F("pound", 1), F("second", 2), F("inch", -1)),
	CompositeUnit("poundal", F("pound", 1), F("foot", 1), F("second", -2)),
}

var troyApothecary = []Entry{
	DerivedUnit("pennyweight", "[mass]", 24, "grain"),
	DerivedUnit("troy_ounce", "[mass]", 480, "grain"),
	DerivedUnit("troy_pound", "[mass]", 12, "troy_ounce"),
	DerivedUnit("scruple", "[mass]", 20, "grain"),
	DerivedUnit("apothecary_dram", "[mass]", 3, "scruple"),
	DerivedUnit("apothecary_ounce", "[mass]", 8, "apothecary_dram"),
	DerivedUnit("apothecary_pound", "[mass]", 12, "apothecary_ounce"),
}

var imperialVolume = []Entry{
	DerivedUnit("imperial_gallon", "[volume]", 4.54609, "liter"),
	DerivedUnit("imperial_pint", "[volume]", 1.0/8.0, "imperial_gallon"),
	DerivedUnit("imperial_quart", "[volume]", 1.0/4.0, "imperial_gallon"),
	DerivedUnit("imperial_peck", "[volume]", 2, "imperial_gallon"),
	DerivedUnit("imperial_bushel", "[volume]", 8, "imperial_gallon"),
	DerivedUnit("imperial_barrel", "[volume]", 36, "imperial_gallon"),
	DerivedUnit("imperial_fluid_ounce", "[volume]", 1.0/20.0, "imperial_pint"),
	DerivedUnit("imperial_minim", "[volume]", 1.0/480.0, "imperial_fluid_ounce"),
	DerivedUnit("imperial_fluid_scruple", "[volume]", 1.0/24.0, "imperial_fluid_ounce"),
	DerivedUnit("imperial_fluid_drachm", "[volume]", 1.0/8.0, "imperial_fluid_ounce"),
	DerivedUnit("imperial_gill", "[volume]", 1.0/4.0, "imperial_pint"),
	DerivedUnit("imperial_cup", "[volume]", 1.0/2.0, "imperial_pint"),
}

var printer = []Entry{
	DerivedUnit("pica", "[length]", 1.0/6.0, "inch"),
	DerivedUnit("point", "[length]", 1.0/12.0, "pica"),
	DerivedUnit("didot", "[length]", 1.0/2660.0, "meter"),
	DerivedUnit("cicero", "[length]", 12, "didot"),
	DerivedUnit("tex_point", "[length]", 1.0/72.27, "inch"),
	DerivedUnit("tex_pica", "[length]", 12, "tex_point"),
	DerivedUnit("tex_didot", "[length]", 1238.0/1157.0, "tex_point"),
	DerivedUnit("tex_cicero", "[length]", 12, "tex_didot"),
	DerivedUnit("scaled_point", "[length]", 1.0/65536.0, "tex_point"),
}

type siPrefix struct {
	name   string
	factor float64
}

var siPrefixes = []siPrefix{
	{"exa", 1e18},
	{"peta", 1e15},
	{"tera", 1e12},
	{"giga", 1e9},
	{"mega", 1e6},
	{"kilo", 1e3},
	{"hecto", 1e2},
	{"deca", 1e1},
	{"deci", 1e-1},
	{"centi", 1e-2},
	{"milli", 1e-3},
	{"micro", 1e-6},
	{"nano", 1e-9},
	{"pico", 1e-12},
	{"femto", 1e-15},
}

// metricUnits takes every SI prefix. The dimension is the one each prefixed
// unit is registered under.
var metricUnits = []struct {
	unit      string
	dimension string
}{
	{"meter", "[length]"},
	{"gram", "[mass]"},
	{"second", "[time]"},
	{"ampere", "[current]"},
	{"kelvin", "[temperature]"},
	{"mole", "[amount]"},
	{"candela", "[luminosity]"},
	{"bit", "[information]"},
	{"byte", "[information]"},
	{"liter", "[volume]"},
	{"hertz", "[frequency]"},
	{"newton", "[force]"},
	{"joule", "[energy]"},
	{"electron_volt", "[energy]"},
	{"watt", "[power]"},
	{"watt_hour", "[energy]"},
	{"pascal", "[pressure]"},
	{"bar", "[pressure]"},
	{"coulomb", "[charge]"},
	{"volt", "[electric_potential]"},
	{"ohm", "[resistance]"},
	{"siemens", "[conductance]"},
	{"farad", "[capacitance]"},
	{"weber", "[magnetic_flux]"},
	{"henry", "[inductance]"},
	{"tesla", "[magnetic_field]"},
	{"becquerel", "[radiation]"},
	{"gray", "[absorbed_dose]"},
	{"sievert", "[absorbed_dose]"},
	{"lumen", "[luminous_flux]"},
	{"lux", "[illuminance]"},
	{"katal", "[activity]"},
	{"molar", "[concentration]"},
}

// prefixed expands metricUnits, skipping any name the table already defines
// (kilogram is a base unit, not 1000 gram).
func prefixed(table []Entry) []Entry {
	taken := make(map[string]bool, len(table))
	for _, e := range table {
		taken[e.Name] = true
	}
	var out []Entry
	for _, m := range metricUnits {
		for _, p := range siPrefixes {
			name := p.name + m.unit
			if taken[name] {
				continue
			}
			taken[name] = true
			out = append(out, DerivedUnit(name, m.dimension, p.factor, m.unit))
		}
	}
	return out
}

func concat(groups ...[]Entry) []Entry {
	var out []Entry
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
