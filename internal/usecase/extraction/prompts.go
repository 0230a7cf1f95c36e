package extraction

import "fmt"

// systemPrompt is shared by all four categories. It pins the model to
// JSON-only output so the parser has a fighting chance.
const systemPrompt = "You are an AI assistant that extracts structured information from meeting transcripts. Always respond with valid JSON only."

func buildDecisionsPrompt(transcript string) string {
	return fmt.Sprintf(`You are an AI assistant analyzing meeting transcripts. Extract all decisions made during the meeting.

For each decision, provide:
- The decision text
- A confidence score (0.0 to 1.0)

Return ONLY a JSON array of decisions in this exact format:
[
  {"decision": "Decision text here", "confidence": 0.95}
]

If no decisions are found, return an empty array: []

Meeting Transcript:
%s

JSON Response:`, transcript)
}

func buildActionItemsPrompt(transcript string) string {
	return fmt.Sprintf(`You are an AI assistant analyzing meeting transcripts. Extract all action items, tasks, and commitments.

For each action item, provide:
- action_type: "Email", "Meeting", or "Task"
- description: What needs to be done
- assigned_to: Person responsible (if mentioned)
- due_date: Due date if mentioned (YYYY-MM-DD format, or null)
- confidence: Confidence score (0.0 to 1.0)

Return ONLY a JSON array in this exact format:
[
  {
    "action_type": "Task",
    "description": "Complete technical specifications",
    "assigned_to": "Mike Johnson",
    "due_date": "2026-02-07",
    "confidence": 0.90
  }
]

If no action items are found, return an empty array: []

Meeting Transcript:
%s

JSON Response:`, transcript)
}

func buildFollowUpsPrompt(transcript string) string {
	return fmt.Sprintf(`You are an AI assistant analyzing meeting transcripts. Extract all follow-up items that need tracking.

For each follow-up, provide:
- description: What needs to be followed up on
- confidence: Confidence score (0.0 to 1.0)

Return ONLY a JSON array in this exact format:
[
  {
    "description": "Check with design team on mockup timeline",
    "confidence": 0.85
  }
]

If no follow-ups are found, return an empty array: []

Meeting Transcript:
%s

JSON Response:`, transcript)
}

func buildProblemsPrompt(transcript string) string {
	return fmt.Sprintf(`You are an AI assistant analyzing meeting transcripts. Extract all problem statements, concerns, or issues raised.

For each problem, provide:
- statement: The problem or concern
- confidence: Confidence score (0.0 to 1.0)

Return ONLY a JSON array in this exact format:
[
  {
    "statement": "Current dashboard performance is slow with large datasets",
    "confidence": 0.92
  }
]

If no problems are found, return an empty array: []

Meeting Transcript:
%s

JSON Response:`, transcript)
}
