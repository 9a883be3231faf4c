package services

import "sort"

// TransferMessage is the reply of the transfer stub. No money moves.
const TransferMessage = "Transfer completed! Your funds went to the common pot."

var infoTexts = map[string]string{
	"menu":     "Keep out, it bites.",
	"settings": "You do not have enough access rights, please contact the administrator.",
	"security": "You will not need this, we are the safest bank around.",
	"support":  "+7 (495) 989-50-50 helpline.",
	"remember": "Remember me toggle is not available yet.",
}

// Info returns the fixed text shown for an informational menu topic.
func Info(topic string) (string, bool) {
	text, ok := infoTexts[topic]
	return text, ok
}

// InfoTopics lists the known topics in alphabetical order.
func InfoTopics() []string {
	topics := make([]string, 0, len(infoTexts))
	for t := range infoTexts {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// TransferResult is the outcome of the transfer stub.
func TransferResult() Result {
	return Result{OK: true, Message: TransferMessage}
}
