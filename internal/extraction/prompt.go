package extraction

import (
	"fmt"
	"time"
)

// buildPrompt instructs the model to answer with a single strict JSON object
// in the ParsedTransaction shape. Today's date is included so relative dates
// ("dün", "geçen hafta") can be resolved.
func buildPrompt(text string) string {
	today := time.Now().Format("2006-01-02")

	return "You are a financial transaction parser for Turkish natural-language utterances.\n\n" +
		"Task:\n" +
		"- Parse the utterance below into a single transaction.\n" +
		"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
		"- Output exactly one JSON object.\n\n" +
		"The object must have these fields:\n" +
		"- \"amount\": positive number, or null if no amount is stated\n" +
		"- \"type\": \"income\" or \"expense\", or null if undeterminable\n" +
		"- \"description\": short string, or null\n" +
		"- \"category_keyword\": the single word or phrase naming what the money was for, or null\n" +
		"- \"date\": string \"YYYY-MM-DD\", or null if no date is stated\n" +
		"- \"notes\": string, or null\n" +
		"- \"confidence\": number between 0.0 and 1.0, your confidence in this parse\n\n" +
		"Rules:\n" +
		"- Today is " + today + "; resolve relative dates against it.\n" +
		"- Keep \"category_keyword\" in the utterance's own words (e.g. \"market\", \"kira\").\n" +
		"- Return ONLY valid raw JSON.\n" +
		"- Do NOT wrap the response in code fences.\n" +
		"- Output must begin with \"{\" and end with \"}\".\n\n" +
		fmt.Sprintf("Utterance: %q\n", text)
}
