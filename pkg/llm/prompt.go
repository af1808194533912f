package llm

import "fmt"

const temperature = 0.2

const briefSystemPrompt = "Be concise, objective, and market-focused."

// BriefPrompt builds the instruction for an evidence block of n items. The
// model cites evidence numbers as given; renumbering happens afterwards.
func BriefPrompt(block string, n int) string {
	return fmt.Sprintf(`Role: You are a professional U.S. financial-markets analyst.

Goal: From the article list below, include ONLY items that are materially relevant to U.S. financial markets OR AI-related firms (like Tesla, Nvidia, OpenAI) OR corporate culture OR financial analysts. Ignore everything else.

Output rules:
1) Write 3-5 short, numbered paragraphs as '1)', '2)', '3)'. Each paragraph must cover one DISTINCT firm or macro theme; do not repeat a firm or theme across paragraphs. Separate paragraphs with a blank line.
2) Each paragraph should be 2-3 sentences of about 30 words; neutral tone; factual; no quotes, judgement or conclusion.
3) Use inline numeric citations [1]..[%d] that refer ONLY to the evidence list below (do not invent numbers). Place each citation at the end of the clause it supports. If multiple articles support a point, chain ALL relevant citations like [3][7][12]. There is no upper limit on citations per paragraph, but do not repeat a citation within a clause.
4) Do NOT re-number sources; keep the evidence numbers exactly as provided. The system will remap cited sources to 1..K later.

%s`, n, block)
}
