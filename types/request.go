package types

type QuestionRequest struct {
	Question string `json:"question"`
}

type ChallengeRequest struct {
	NumQuestions int `json:"num_questions,omitempty"`
}

type EvaluateRequest struct {
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
}
