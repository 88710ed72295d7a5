package synth

// Post templates per category. Placeholder tokens in braces are substituted
// from templateVars at generation time.
var socialTemplates = map[string][]string{
	"conflict": {
		"Reports of {intensity} tensions between India and Pakistan near {location}. #IndoPak",
		"Military analysts watching {location} border situation closely. No confirmation of strikes. #IndoPak",
		"{official} denies reports of conflict escalation between India and Pakistan.",
		"Unconfirmed reports of {activity} near {location}. Awaiting official statement.",
		"Satellite imagery shows no evidence of {claimed_activity} at {location} despite online rumors.",
	},
	"nuclear": {
		"Pakistan's nuclear facilities remain under normal operations. Claims of attacks are unverified.",
		"Security increased at {location} nuclear site, but no incidents reported. Standard procedure.",
		"Misinformation spreading about Pakistani nuclear facilities. No evidence of any strikes.",
		"Analysts confirm no unusual activity at {location} based on available satellite imagery.",
		"{official} statement: 'All nuclear facilities secure and operational. Dismiss false reports.'",
	},
	"military": {
		"Military movements observed near {location}, consistent with routine {exercise_type} exercises.",
		"Indian Air Force denies conducting any operations across Pakistani airspace.",
		"Pakistan military on heightened alert near {location}, but no conflict reported.",
		"Defense analysts: Claims of airstrikes lack credible evidence. Likely misinformation.",
		"Routine troop rotations misinterpreted as conflict preparation. Situation normal.",
	},
}

// One canonical value list per token. The location list is the site-name one;
// an earlier border-region variant was dead data and has been dropped.
var templateVars = map[string][]string{
	"intensity":        {"growing", "moderate", "concerning", "limited", "alleged"},
	"location":         {"Kahuta", "Sargodha", "Kamra", "Chashma", "Karachi nuclear plant"},
	"official":         {"Pakistani Foreign Ministry", "Indian Defense Ministry", "Military spokesperson", "Intelligence sources", "ISPR"},
	"activity":         {"troop movements", "surveillance flights", "radar activity", "military exercises", "border patrols"},
	"claimed_activity": {"airstrikes", "missile impacts", "drone operations", "special forces activity", "artillery fire"},
	"exercise_type":    {"defense", "readiness", "annual", "counter-terrorism", "joint forces"},
}

// militaryAircraft are the type labels used for synthetic flights
var militaryAircraft = []string{
	"C-130", "F-16", "MiG-29", "Su-30MKI", "Mi-17", "CH-47", "P-8I", "E-2C",
}

// activityProfile pairs a military activity type with its significance label
type activityProfile struct {
	Type         string
	Significance string
	Weight       float64
}

// militaryActivities is the weighted distribution synthetic military records
// are drawn from. Weights sum to 1.0.
var militaryActivities = []activityProfile{
	{Type: "Normal operations", Significance: "Low", Weight: 0.40},
	{Type: "Training exercise", Significance: "Low", Weight: 0.30},
	{Type: "Increased readiness", Significance: "Medium", Weight: 0.15},
	{Type: "Alert status change", Significance: "Medium", Weight: 0.10},
	{Type: "Unusual deployment", Significance: "High", Weight: 0.05},
}
