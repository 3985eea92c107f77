// AngelaMos | 2026
// prompts.go

package ai

const (
	ToneProfessional  = "professional"
	ToneCasual        = "casual"
	ToneFriendly      = "friendly"
	ToneAuthoritative = "authoritative"
	ToneFun           = "fun"
	ToneViral         = "viral"
)

var toneInstructions = map[string]string{
	ToneProfessional:  "Use a professional, authoritative tone with industry expertise.",
	ToneCasual:        "Write in a casual, conversational style that's easy to read.",
	ToneFriendly:      "Be warm, approachable, and helpful in your writing.",
	ToneAuthoritative: "Write with confidence and expertise, citing facts and data.",
	ToneFun:           "Make it entertaining, engaging with humor and personality.",
	ToneViral:         "Create shareable, attention-grabbing content with hooks and compelling narratives.",
}

// NormalizeTone maps any input to a known tone, defaulting to
// professional.
func NormalizeTone(tone string) string {
	if _, ok := toneInstructions[tone]; ok {
		return tone
	}
	return ToneProfessional
}

func toneInstruction(tone string) string {
	return toneInstructions[NormalizeTone(tone)]
}

const funModeAddendum = `
IMPORTANT - FUN MODE ACTIVATED:
- Add witty observations and clever wordplay
- Include engaging hooks and surprising facts
- Make content highly shareable and memorable
- Use conversational language with personality
- Add rhetorical questions to engage readers
`

const articlePromptTemplate = `You are HYDRASEO, an expert SEO content writer. Create comprehensive, SEO-optimized articles that rank well on Google and get cited by AI search engines like ChatGPT, Perplexity, and Google AI.

Writing Guidelines:
- %s
- Use proper heading hierarchy (H2, H3, H4)
- Include the target keywords naturally throughout
- Write engaging, informative content
- Include bullet points and numbered lists where appropriate
- Add a compelling introduction and conclusion
- Optimize for featured snippets
%s
Write a comprehensive article with the following specifications:

Title: %s
Target Keywords: %s
Target Word Count: %d words

Structure the article with:
1. Engaging introduction with a hook
2. Multiple H2 sections covering the topic thoroughly
3. H3 subsections for detailed points
4. Practical tips or actionable advice
5. Strong conclusion with a call-to-action

Return ONLY the article content in Markdown format.`

const metaPromptTemplate = `Based on this article title and content, generate:
1. Meta Title (under 60 characters, include main keyword)
2. Meta Description (under 160 characters, compelling and keyword-rich)

Title: %s
Keywords: %s

Return as JSON: {"meta_title": "...", "meta_description": "..."}`

const keywordsPromptTemplate = `You are an SEO keyword research expert. Generate %d SEO keywords related to: "%s"

Include:
- Primary keywords (2-3 words)
- Long-tail keywords (4-6 words)
- Question-based keywords
- LSI (Latent Semantic Indexing) keywords

For each keyword, estimate search volume (100-10000), difficulty (1-100), and relevance score (0.0-1.0).

Return as JSON array:
[
    {
        "keyword": "example keyword",
        "search_volume": 1000,
        "difficulty": 45,
        "relevance_score": 0.85,
        "is_long_tail": false
    }
]`

const competitorsPromptTemplate = `You are an SEO competitor analyst. For the keyword "%s", analyze what top-ranking articles typically include:

1. Generate %d hypothetical top SERP results with realistic titles and descriptions
2. Identify common content structure and headings
3. Find content gaps (topics competitors might miss)
4. Suggest a winning outline

Return as JSON:
{
    "results": [
        {
            "rank": 1,
            "title": "Example Title",
            "url": "https://example.com/article",
            "description": "Meta description...",
            "word_count": 2000,
            "headings": ["H2: First Section", "H2: Second Section"]
        }
    ],
    "suggested_outline": ["Introduction", "What is X", "Benefits of X"],
    "content_gaps": ["Gap 1", "Gap 2"]
}`

const seoPromptTemplate = `Analyze this content for SEO optimization:

Target Keyword: %s
Word Count: %d
Keyword Density: %.2f%%

Content (first 1000 chars):
%s...

Provide:
1. SEO Score (0-100)
2. Readability Score (0-100)
3. Top 5 suggestions for improvement
4. Issues found (title, headings, keyword usage, etc.)

Return as JSON:
{
    "score": 75,
    "readability_score": 80,
    "suggestions": ["Add more H2 headings", ...],
    "issues": [{"type": "warning", "message": "Keyword density too low"}]
}`

const humanizeAddendum = `
HUMANIZE MODE: Make the content sound more natural and human-written:
- Vary sentence structure and length
- Add personal touches and conversational elements
- Remove robotic patterns
- Include natural transitions
`

const rewritePromptTemplate = `You are a content rewriter. Rewrite the following content with a %s tone.
%s
Preserve these keywords: %s

Content to rewrite:
%s

Requirements:
- Maintain the core message and information
- Improve readability and engagement
- Keep SEO keywords intact
- Return only the rewritten content`

const plagiarismPromptTemplate = `Analyze this content for:
1. AI-detection risk (0-100, lower is better)
2. Originality estimation (0-100)
3. Patterns that look AI-generated
4. Suggestions to make it more human

Content:
%s

Return as JSON:
{
    "ai_detection_risk": 35,
    "originality_score": 75,
    "flagged_patterns": ["Pattern 1", "Pattern 2"],
    "suggestions": ["Suggestion 1", "Suggestion 2"]
}`
