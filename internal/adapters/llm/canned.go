package llm

import (
	"context"
	"strings"
)

const CannedDefaultReply = "I'm here to help with posture and ergonomics questions. Could you rephrase your question, or try one of the suggested topics below?"

var cannedReplies = []struct {
	question string
	reply    string
}{
	{
		"How can I improve my posture?",
		"To improve your posture, try these tips:\n\n• Keep your shoulders back and relaxed\n• Pull in your abdomen\n• Keep your feet flat on the floor\n• Take regular breaks from sitting\n• Consider ergonomic furniture\n• Practice posture-strengthening exercises like planks and wall stands",
	},
	{
		"What exercises help with lower back pain?",
		"For lower back pain, these exercises can help:\n\n• Gentle stretches like child's pose and cat-cow\n• Pelvic tilts to strengthen your core\n• Knee-to-chest stretches\n• Walking and swimming for low-impact movement\n• Strengthening exercises for your back muscles\n\nAlways start gently and consult with a healthcare provider if you have severe pain.",
	},
	{
		"How often should I take breaks when sitting?",
		"It's recommended to take a short break every 30 minutes when sitting for long periods. Even a 1-2 minute break to stand up, stretch, or walk around can make a significant difference.\n\nConsider using the 20-20-20 rule: every 20 minutes, look at something 20 feet away for 20 seconds to reduce eye strain as well.",
	},
	{
		"What are signs of poor ergonomics?",
		"Signs of poor ergonomics include:\n\n• Frequent discomfort or pain in your neck, shoulders, or back\n• Tingling or numbness in hands or wrists\n• Headaches, especially in the afternoon\n• Eye strain or blurred vision\n• Feeling stiff after sitting\n• Reduced productivity due to discomfort\n\nIf you experience these regularly, consider evaluating your workspace setup.",
	},
}

var questionMarkers = []string{"Current question: ", "User question: "}

// CannedGenerator answers the conversation starters offline and falls back
// to a fixed reply for anything else.
type CannedGenerator struct{}

func NewCannedGenerator() *CannedGenerator {
	return &CannedGenerator{}
}

func (g *CannedGenerator) GenerateReply(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	question := strings.ToLower(currentQuestion(prompt))

	reply := CannedDefaultReply
	for _, c := range cannedReplies {
		if strings.Contains(question, strings.ToLower(c.question)) {
			reply = c.reply
		}
	}
	return reply, nil
}

// currentQuestion strips the context block a chat prompt is wrapped in.
func currentQuestion(prompt string) string {
	for _, marker := range questionMarkers {
		if i := strings.LastIndex(prompt, marker); i >= 0 {
			return prompt[i+len(marker):]
		}
	}
	return prompt
}
