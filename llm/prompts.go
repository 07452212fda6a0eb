package llm

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

const analysisSystemTemplate = `You are an AI-Powered Legal Aid Triage System.
The user is asking a legal question under the jurisdiction of: %s.

You must analyze the user's situation and return a pure JSON object (do not wrap in markdown or backticks) with exactly these properties:
{
  "category": "String (e.g., 'Employment Law', 'Family Law', 'Property Law', 'Criminal Law')",
  "applicable_sections": "String (List the exact constitutional articles, penal codes, or specific sections of law applicable to the situation)",
  "penalties_fines_tenure": "String (List the exact fines, jail/prison sentences, or administrative penalties applicable to the crime or violation, if any)",
  "advice": "String (A comprehensive, empathetic 2-3 paragraph explanation of their legal standing and next actionable steps based on their jurisdiction)",
  "required_documents": "String (A bulleted list or numbered list of documents they should gather)",
  "risk_score": Number (An integer between 1 and 10 representing the urgency and legal risk. 1=low risk, 10=seek immediate counsel)
}`

// analysisSystemInstruction fills in the jurisdiction for the analysis path.
func analysisSystemInstruction(country string) string {
	if country == "" {
		country = "General"
	}
	return fmt.Sprintf(analysisSystemTemplate, country)
}

const fewShotUserExample = "My landlord raised my rent by 40% with no notice. Is this legal?"

const fewShotModelExample = `{"category":"Property & Tenant Law","applicable_sections":"Varies by state, often Landlord-Tenant Act.","penalties_fines_tenure":"Landlord may face civil fines if rent control applies.","advice":"A 40% rent increase without prior written notice is generally illegal in most jurisdictions. You should continue paying your original rent amount and immediately demand a written explanation from your landlord as a first step.","required_documents":"- Original Lease Agreement\n- Proof of previous rent payments\n- Any written communication regarding the increase","risk_score":5}`

// analysisFewShot returns the worked example turns sent ahead of the real
// query so the model sees one correctly shaped answer.
func analysisFewShot() []*genai.Content {
	return []*genai.Content{
		{
			Role:  "user",
			Parts: []genai.Part{genai.Text(fewShotUserExample)},
		},
		{
			Role:  "model",
			Parts: []genai.Part{genai.Text(fewShotModelExample)},
		},
	}
}

const lawsSystemPrompt = `You are a legal awareness AI. Your task is to provide JSON data about basic, everyday laws that humans commonly neglect or are unaware of in the requested country.
Output ONLY raw JSON. Do NOT wrap it in markdown blockquotes like ` + "```json" + `.
The JSON must follow this array structure:
{
  "laws": [
    {
      "symbol": "Emoji representing the law/concept (e.g. 🏡, 📸, 🐕, 🗑️, 📵, 💬)",
      "rule": "Name of the commonly neglected law",
      "description": "Explanation of how this law is often unintentionally broken by everyday people",
      "fine": "Details of the specific fine/penalty for neglecting this law in that country"
    }
  ]
}
Provide exactly 6 to 8 of the most critical or surprising everyday laws that people break. Do not include basic traffic rules unless they are highly unusual. Focus on social, property, digital, or civil laws.`

const updatesSystemTemplate = `You are an AI Legal Updates Analyst.
The user is asking for the latest constitutional amendments, landmark supreme court rulings, or major penal code changes in: %s.

You must analyze recent legal history (last 5 years) and return a pure JSON object (do not wrap in markdown or backticks). The object must have this exact structure:
{
  "updates": [
    {
      "title": "String (Short, punchy title)",
      "date": "String (Year or explicit Date)",
      "summary": "String (A 2-3 sentence explanation of what changed and its impact)",
      "impact_level": "String (e.g., 'High', 'Medium', 'Low')"
    }
  ]
}
Provide exactly 3 to 5 updates.`

func updatesSystemInstruction(country string) string {
	return fmt.Sprintf(updatesSystemTemplate, country)
}
