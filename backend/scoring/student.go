package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"mindwell/backend/models"
)

// The five student-domain scorers. Each maps one headline metric to a
// small fixed advice set and is persisted verbatim as a snapshot on
// the assessment row.

func StudentStress(stressLevel float64) *models.StressPrediction {
	level := "Low"
	advice := "Your stress levels are manageable. Continue with healthy coping strategies."
	if stressLevel > 60 {
		level = "High"
		advice = "Consider speaking with a counselor and implementing immediate stress reduction techniques."
	} else if stressLevel > 30 {
		level = "Moderate"
	}

	return &models.StressPrediction{
		StressLevel: level,
		Advice:      advice,
		CopingStrategies: []string{
			"Practice deep breathing exercises",
			"Take regular breaks during study sessions",
			"Maintain a consistent sleep schedule",
			"Exercise regularly",
		},
	}
}

func StudentProcrastination(productivityScore float64) *models.ProcrastinationPrediction {
	risk := "Low"
	advice := "Your productivity habits are good. Keep up the momentum!"
	if productivityScore < 40 {
		risk = "High"
		advice = "High procrastination risk detected. Try breaking tasks into smaller steps and using the Pomodoro technique."
	} else if productivityScore < 70 {
		risk = "Moderate"
	}

	return &models.ProcrastinationPrediction{
		RiskLevel: risk,
		Advice:    advice,
		Suggestions: []string{
			"Use the Pomodoro technique (25 minutes work + 5 minutes break)",
			"Break large tasks into smaller, manageable steps",
			"Set specific deadlines for each task",
			"Reward yourself after completing tasks",
		},
	}
}

func StudentSleep(burnoutRisk float64) *models.SleepPrediction {
	risk := "Low"
	insights := "Your sleep habits are generally healthy. Continue maintaining good sleep hygiene."
	if burnoutRisk > 60 {
		risk = "High"
		insights = "Your sleep patterns suggest high burnout risk. Prioritize rest and consider professional support."
	} else if burnoutRisk > 30 {
		risk = "Moderate"
	}

	return &models.SleepPrediction{
		RiskLevel: risk,
		Recommendations: []string{
			"Aim for 7-9 hours of sleep per night",
			"Maintain a consistent sleep schedule",
			"Create a relaxing bedtime routine",
			"Limit caffeine and screen time before bed",
		},
		Insights: insights,
	}
}

var (
	confidencePositiveWords = []string{"confident", "strong", "capable", "proud", "happy", "grateful"}
	confidenceNegativeWords = []string{"worried", "anxious", "insecure", "doubt", "fear", "inadequate"}
)

// StudentConfidence runs a naive keyword sentiment check over the
// journal and comparison texts. Not a real sentiment model: it counts
// which marker words appear and scales the balance into 0-100.
func StudentConfidence(anonymousJournal, comparisonThoughts string) *models.ConfidencePrediction {
	text := strings.ToLower(anonymousJournal + " " + comparisonThoughts)

	positiveCount := 0
	for _, word := range confidencePositiveWords {
		if strings.Contains(text, word) {
			positiveCount++
		}
	}
	negativeCount := 0
	for _, word := range confidenceNegativeWords {
		if strings.Contains(text, word) {
			negativeCount++
		}
	}

	sentiment := "Neutral"
	feedback := "Your reflections indicate some challenges with confidence. Consider focusing on your unique strengths."
	if positiveCount > negativeCount {
		sentiment = "Positive"
		feedback = "Your reflections show good self-awareness and positivity. Keep building on these strengths!"
	} else if negativeCount > positiveCount {
		sentiment = "Negative"
	}

	score := 50 + float64(positiveCount)*10 - float64(negativeCount)*5
	score = math.Max(0, math.Min(100, score))

	return &models.ConfidencePrediction{
		Sentiment: sentiment,
		Feedback:  feedback,
		Affirmations: []string{
			"I am worthy of respect and kindness",
			"My efforts and growth matter",
			"I bring unique value to my relationships",
			"I am capable of achieving my goals",
			"My voice and opinions are important",
		},
		ConfidenceScore: score,
	}
}

var careerTitles = map[string]string{
	"analytical": "Data Scientist or Research Scientist",
	"creative":   "Designer or Marketing Professional",
	"social":     "Teacher or Counselor",
	"practical":  "Engineer or Project Manager",
	"leadership": "Entrepreneur or Manager",
	"helping":    "Healthcare Professional or Social Worker",
}

// StudentCareer ranks the interest ratings descending (ties broken by
// name so the ranking stays deterministic) and maps the top interest
// through the fixed interest-to-career table.
func StudentCareer(interests map[string]float64, futureAnxiety float64) *models.CareerPrediction {
	type rated struct {
		name   string
		rating float64
	}
	ranked := make([]rated, 0, len(interests))
	for name, rating := range interests {
		ranked = append(ranked, rated{name, rating})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].rating != ranked[j].rating {
			return ranked[i].rating > ranked[j].rating
		}
		return ranked[i].name < ranked[j].name
	})

	top := make([]string, 0, 2)
	for i := 0; i < len(ranked) && i < 2; i++ {
		top = append(top, ranked[i].name)
	}

	primaryCareer := "Professional in your field of interest"
	if len(top) > 0 {
		if title, ok := careerTitles[top[0]]; ok {
			primaryCareer = title
		}
	}

	uncertaintyAdvice := "Your uncertainty level is manageable. Focus on exploring your interests through courses and internships."
	if futureAnxiety > 7 {
		uncertaintyAdvice = "Your high anxiety suggests you may benefit from career counseling. Consider speaking with a career advisor."
	}

	return &models.CareerPrediction{
		PrimaryCareer: primaryCareer,
		Reasoning:     fmt.Sprintf("Based on your strong interest in %s, %s could be a great fit.", strings.Join(top, " and "), primaryCareer),
		NextSteps: []string{
			"Research programs related to your interests",
			"Speak with professionals in your field of interest",
			"Take relevant courses or certifications",
			"Gain practical experience through internships or volunteer work",
		},
		UncertaintyAdvice: uncertaintyAdvice,
	}
}
