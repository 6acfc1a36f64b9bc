package usecase

import "fmt"

const systemPrompt = "You are an expert meeting-minutes writer. " +
	"You turn raw meeting transcripts into structured minutes and always answer with a single JSON object."

const userPromptTemplate = `Below is the text of a recorded meeting, produced by speech recognition.
Write structured meeting minutes from it.

Meeting transcript:
%s

Answer with JSON in exactly this shape:
{
  "title": "a fitting title based on the content",
  "content": "a detailed, organized account of the whole meeting",
  "summary": "a 2-3 sentence summary",
  "participants": ["names mentioned in the meeting"],
  "keyPoints": ["main discussion points"],
  "actionItems": ["follow-up tasks in the form 'Owner: task (due: date)'"]
}

Rules:
- Write every value in %s.
- If participant names are unclear, use "Participant 1", "Participant 2" and so on.
- Return valid JSON only.`

var languageNames = map[string]string{
	"ko": "Korean",
	"en": "English",
	"ja": "Japanese",
	"zh": "Chinese",
	"vi": "Vietnamese",
}

func userPrompt(transcript, language string) string {
	name, ok := languageNames[language]
	if !ok {
		name = "the language of the transcript"
	}
	return fmt.Sprintf(userPromptTemplate, transcript, name)
}
