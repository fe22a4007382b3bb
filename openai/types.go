package openai

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single role-tagged message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is one chat-completion request: a transcript plus generation
// parameters.
type ChatRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// Usage carries the token counters reported by the service.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResult is the normalized reply to a chat-completion request.
type ChatResult struct {
	Reply        string
	Model        string
	FinishReason string
	Usage        Usage
}

// Model describes one available model.
type Model struct {
	ID string `json:"id"`
}

// chatRequest is the wire shape for POST /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// chatResponse is the minimal wire shape of a completion response.
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

// modelsResponse is the wire shape of GET /models.
type modelsResponse struct {
	Data []Model `json:"data"`
}
