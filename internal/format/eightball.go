package format

import "fmt"

// 20 oracle answers: 10 positive, 5 neutral, 5 negative. Selection is
// uniform over the whole pool, not per tier.
var eightBallResponses = [...]string{
	"It is certain~ 💕",
	"It is decidedly so~ 💗",
	"Without a doubt~ 💖",
	"Yes, definitely~ 💕",
	"You may rely on it~ 💗",
	"As I see it, yes~ ✨",
	"Most likely~ 💕",
	"Outlook good~ 💖",
	"Yes~ 💗",
	"Signs point to yes~ ✨",

	"Reply hazy, try again~ 🤔",
	"Ask again later~ 💭",
	"Better not tell you now~ 😏",
	"Cannot predict now~ 🔮",
	"Concentrate and ask again~ 💫",

	"Don't count on it~ 💔",
	"My reply is no~ 😤",
	"My sources say no~ 💢",
	"Outlook not so good~ 😞",
	"Very doubtful~ 💔",
}

// EightBallPoolSize is the number of oracle answers; callers draw an index
// in [0, EightBallPoolSize) from their own random source.
const EightBallPoolSize = len(eightBallResponses)

func EightBall(question string, pick int) string {
	if pick < 0 || pick >= len(eightBallResponses) {
		pick = 0
	}
	return fmt.Sprintf("🎱 **Magic 8-Ball**\n\n**Question:** %s\n\n**Answer:** %s\n\n*shakes the 8-ball mysteriously*",
		question, eightBallResponses[pick])
}
