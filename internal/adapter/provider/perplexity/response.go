package perplexity

// apiResponse is the chat completions envelope. Only the first choice's
// message content is used.
type apiResponse struct {
	Choices []apiChoice `json:"choices"`
}

type apiChoice struct {
	Message apiMessage `json:"message"`
}

type apiMessage struct {
	Content string `json:"content"`
}

// apiPersona is one persona object inside the structured completion content.
type apiPersona struct {
	JobTitle    string   `json:"job_title"`
	Name        string   `json:"name"`
	Background  string   `json:"background"`
	PainPoints  []string `json:"pain_points"`
	Goals       string   `json:"goals"`
	Motivations string   `json:"motivations"`
}
