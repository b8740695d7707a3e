package booking

// knowledgeQuestions are the adaptive triage questions returned with a
// service-issue intake so the agent can narrow the fault before the visit.
var knowledgeQuestions = map[string][]string{
	"WashingMachine": {
		"Is the drum spinning?",
		"Is there vibration or movement?",
		"Is water intake or drainage normal?",
		"Are any error codes visible?",
	},
	"AC": {
		"Is it cooling effectively?",
		"Is there reduced airflow?",
		"Any unusual noise?",
		"Any water leakage?",
		"Any error codes displayed?",
	},
	"Refrigerator": {
		"Is cooling normal?",
		"Any frost buildup?",
		"Is the door sealing properly?",
		"Any unusual noise?",
	},
	"TV": {
		"Does the TV power on?",
		"Are there display issues?",
		"Is the remote pairing fine?",
		"Are input ports working?",
	},
	"WaterPurifier": {
		"Is water flowing normally?",
		"Is filter status ok?",
		"Any leakage?",
		"Any unusual noise?",
	},
}

// KnowledgeQuestions returns the diagnostic checklist for an appliance,
// empty for appliances without one.
func KnowledgeQuestions(appliance string) []string {
	return knowledgeQuestions[appliance]
}
