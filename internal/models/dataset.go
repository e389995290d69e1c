package models

// WritingOverview is one bar of the class writing overview.
type WritingOverview struct {
	StudentID      int    `yaml:"student_id" json:"student_id"`
	FullName       string `yaml:"full_name" json:"full_name"`
	WordCount      int    `yaml:"word_count" json:"word_count"`
	LastSubmission string `yaml:"last_submission" json:"last_submission"`
}

// EngagementMetric pairs submissions with time spent for the engagement scatter.
type EngagementMetric struct {
	ID              int    `yaml:"id" json:"id"`
	FullName        string `yaml:"full_name" json:"full_name"`
	SubmissionCount int    `yaml:"submission_count" json:"submission_count"`
	TimeSpentMin    int    `yaml:"time_spent_min" json:"time_spent_min"`
}

// ImprovementStat pairs resubmissions with scores for the improvement scatter.
type ImprovementStat struct {
	ID              int     `yaml:"id" json:"id"`
	FullName        string  `yaml:"full_name" json:"full_name"`
	ResubmissionAvg float64 `yaml:"resubmission_avg" json:"resubmission_avg"`
	ScoreAvg        float64 `yaml:"score_avg" json:"score_avg"`
}

// ErrorAnalysis counts how often a word was misspelled. Fill is assigned by rank.
type ErrorAnalysis struct {
	WordID          int    `yaml:"word_id" json:"word_id"`
	Word            string `yaml:"word" json:"word"`
	OccurrenceCount int    `yaml:"occurrence_count" json:"occurrence_count"`
	Fill            string `yaml:"-" json:"fill,omitempty"`
}

// ErrorQuestion counts wrong answers for one question.
type ErrorQuestion struct {
	ID       int    `yaml:"id" json:"id"`
	Question string `yaml:"question" json:"question"`
	Errors   int    `yaml:"errors" json:"errors"`
}

// StatCard is one headline figure of the dashboard.
type StatCard struct {
	Title   string `yaml:"title" json:"title"`
	Value   string `yaml:"value" json:"value"`
	Subtext string `yaml:"subtext" json:"subtext"`
}

// AssignmentBaseline holds the sample student's minutes and the class average for one assignment.
type AssignmentBaseline struct {
	Name    string `yaml:"name" json:"name"`
	Student int    `yaml:"student" json:"student"`
	Class   int    `yaml:"class" json:"class"`
}

// WeekActivityBaseline is the sample minutes on the app for one week number.
type WeekActivityBaseline struct {
	Week    int `yaml:"week" json:"week"`
	Student int `yaml:"student" json:"student"`
	Average int `yaml:"average" json:"average"`
}

// PerformanceBaseline is the sample score for one week number.
type PerformanceBaseline struct {
	Week    int `yaml:"week" json:"week"`
	Student int `yaml:"student" json:"student"`
	Class   int `yaml:"class" json:"class"`
}

// SkillBaseline is the sample level for one skill. Floor is the lowest level the skill may show.
type SkillBaseline struct {
	Subject string `yaml:"subject" json:"subject"`
	Student int    `yaml:"student" json:"student"`
	Average int    `yaml:"average" json:"average"`
	Floor   int    `yaml:"floor" json:"floor"`
}

// StudentBaselines are the canned series every student view is derived from.
type StudentBaselines struct {
	Assignments  []AssignmentBaseline   `yaml:"assignments" json:"assignments"`
	WeekActivity []WeekActivityBaseline `yaml:"week_activity" json:"week_activity"`
	Performance  []PerformanceBaseline  `yaml:"performance" json:"performance"`
	Skills       []SkillBaseline        `yaml:"skills" json:"skills"`
}

// Dataset is the full static dataset behind the dashboard.
type Dataset struct {
	Students          []Student          `yaml:"students"`
	SummaryStats      []StatCard         `yaml:"summary_stats"`
	WritingOverview   []WritingOverview  `yaml:"writing_overview"`
	Engagement        []EngagementMetric `yaml:"engagement"`
	Improvement       []ImprovementStat  `yaml:"improvement"`
	ErrorWords        []ErrorAnalysis    `yaml:"error_words"`
	TopErrorQuestions []ErrorQuestion    `yaml:"top_error_questions"`
	Baselines         StudentBaselines   `yaml:"baselines"`
}
