// AngelaMos | 2026
// data.go

package template

var builtinTemplates = []Template{
	{
		ID:             "template-blog-how-to",
		Name:           "How-To Guide",
		Category:       "Blog Posts",
		Description:    "Step-by-step tutorial format perfect for instructional content",
		PromptTemplate: "Create a comprehensive how-to guide about {topic}. Include numbered steps, tips, common mistakes to avoid, and a FAQ section.",
		Structure: Structure{Sections: []string{
			"Introduction", "What You'll Need", "Step-by-Step Guide",
			"Pro Tips", "Common Mistakes", "FAQ", "Conclusion",
		}},
	},
	{
		ID:             "template-blog-listicle",
		Name:           "Listicle (Top 10)",
		Category:       "Blog Posts",
		Description:    "Numbered list format great for engagement and shareability",
		PromptTemplate: "Create a compelling listicle about {topic}. Include detailed descriptions for each item with pros, cons, and use cases.",
		Structure: Structure{Sections: []string{
			"Introduction", "Items 1-10", "Honorable Mentions", "Conclusion",
		}},
	},
	{
		ID:             "template-blog-ultimate-guide",
		Name:           "Ultimate Guide",
		Category:       "Blog Posts",
		Description:    "Comprehensive pillar content covering a topic in-depth",
		PromptTemplate: "Create the ultimate guide to {topic}. Cover everything a beginner to advanced user needs to know.",
		Structure: Structure{Sections: []string{
			"Introduction", "What is X", "Why It Matters", "How It Works",
			"Best Practices", "Tools & Resources", "Case Studies", "Conclusion",
		}},
	},
	{
		ID:             "template-product-review",
		Name:           "Product Review",
		Category:       "Reviews",
		Description:    "In-depth product review with pros, cons, and verdict",
		PromptTemplate: "Write a detailed review of {product}. Include features, pros, cons, pricing, and who it's best for.",
		Structure: Structure{Sections: []string{
			"Overview", "Key Features", "Pros", "Cons", "Pricing",
			"Who Should Buy", "Verdict",
		}},
	},
	{
		ID:             "template-product-comparison",
		Name:           "Product Comparison",
		Category:       "Reviews",
		Description:    "Side-by-side comparison of multiple products",
		PromptTemplate: "Compare {product1} vs {product2}. Include features, pricing, pros/cons, and recommendations.",
		Structure: Structure{Sections: []string{
			"Introduction", "Quick Comparison", "Product A Review",
			"Product B Review", "Feature Comparison", "Pricing", "Verdict",
		}},
	},
	{
		ID:             "template-product-roundup",
		Name:           "Product Roundup",
		Category:       "Reviews",
		Description:    "Best X products for Y - perfect for affiliate content",
		PromptTemplate: "Create a roundup of the best {products} for {audience}. Include detailed mini-reviews for each.",
		Structure: Structure{Sections: []string{
			"Introduction", "How We Tested", "Top Picks", "Budget Option",
			"Premium Choice", "Buying Guide", "FAQ",
		}},
		IsPremium: true,
	},
	{
		ID:             "template-ecom-product-description",
		Name:           "Product Description",
		Category:       "E-commerce",
		Description:    "Compelling product description that converts",
		PromptTemplate: "Write a conversion-focused product description for {product}. Highlight benefits, features, and use cases.",
		Structure: Structure{Sections: []string{
			"Headline", "Key Benefits", "Features", "Specifications",
			"Use Cases", "CTA",
		}},
	},
	{
		ID:             "template-ecom-category-page",
		Name:           "Category Page Content",
		Category:       "E-commerce",
		Description:    "SEO-optimized category page content",
		PromptTemplate: "Write category page content for {category}. Include introduction, buying guide, and FAQ.",
		Structure: Structure{Sections: []string{
			"Category Introduction", "What to Look For", "Popular Brands", "FAQ",
		}},
		IsPremium: true,
	},
	{
		ID:             "template-saas-landing",
		Name:           "SaaS Landing Page",
		Category:       "SaaS",
		Description:    "High-converting landing page copy for software",
		PromptTemplate: "Write landing page copy for {software}. Include headline, benefits, features, social proof, and CTA.",
		Structure: Structure{Sections: []string{
			"Hero Section", "Problem Statement", "Solution", "Features",
			"Benefits", "Testimonials", "Pricing", "CTA",
		}},
		IsPremium: true,
	},
	{
		ID:             "template-saas-feature",
		Name:           "Feature Announcement",
		Category:       "SaaS",
		Description:    "Announce new features to your users",
		PromptTemplate: "Write a feature announcement for {feature}. Explain what it does, why it matters, and how to use it.",
		Structure: Structure{Sections: []string{
			"Introduction", "What's New", "How It Works", "Use Cases",
			"Getting Started",
		}},
	},
	{
		ID:             "template-news-article",
		Name:           "News Article",
		Category:       "News",
		Description:    "Journalistic news format with inverted pyramid",
		PromptTemplate: "Write a news article about {topic}. Use journalistic style with who, what, when, where, why.",
		Structure: Structure{Sections: []string{
			"Headline", "Lead Paragraph", "Key Details", "Background",
			"Quotes", "Future Outlook",
		}},
	},
	{
		ID:             "template-press-release",
		Name:           "Press Release",
		Category:       "News",
		Description:    "Professional press release format",
		PromptTemplate: "Write a press release announcing {announcement}. Include quotes, boilerplate, and contact info.",
		Structure: Structure{Sections: []string{
			"Headline", "Subheadline", "Dateline", "Lead", "Body", "Quote",
			"Boilerplate", "Contact",
		}},
		IsPremium: true,
	},
	{
		ID:             "template-newsletter",
		Name:           "Newsletter",
		Category:       "Email",
		Description:    "Engaging newsletter format with multiple sections",
		PromptTemplate: "Write a newsletter about {topic}. Include headline, intro, main content, tips, and CTA.",
		Structure: Structure{Sections: []string{
			"Subject Line", "Preview Text", "Intro", "Main Story",
			"Quick Tips", "Resource of the Week", "CTA",
		}},
	},
	{
		ID:             "template-email-sequence",
		Name:           "Email Sequence",
		Category:       "Email",
		Description:    "Multi-email nurture sequence",
		PromptTemplate: "Create a 5-email sequence for {goal}. Include welcome, value, case study, offer, and follow-up.",
		Structure: Structure{Sections: []string{
			"Email 1: Welcome", "Email 2: Value", "Email 3: Case Study",
			"Email 4: Offer", "Email 5: Follow-up",
		}},
		IsPremium: true,
	},
	{
		ID:             "template-social-thread",
		Name:           "Twitter/X Thread",
		Category:       "Social Media",
		Description:    "Viral thread format for Twitter/X",
		PromptTemplate: "Create a viral thread about {topic}. Start with a hook, provide value, end with CTA.",
		Structure: Structure{Sections: []string{
			"Hook Tweet", "Setup", "Main Points (5-10)", "Summary", "CTA",
		}},
	},
	{
		ID:             "template-linkedin-post",
		Name:           "LinkedIn Post",
		Category:       "Social Media",
		Description:    "Professional LinkedIn post format",
		PromptTemplate: "Write a LinkedIn post about {topic}. Use storytelling, insights, and engagement hooks.",
		Structure: Structure{Sections: []string{
			"Hook", "Story/Context", "Insight", "Takeaway",
			"Engagement Question",
		}},
	},
	{
		ID:             "template-technical-docs",
		Name:           "Technical Documentation",
		Category:       "Technical",
		Description:    "Clear technical documentation format",
		PromptTemplate: "Write technical documentation for {feature}. Include overview, setup, usage, and troubleshooting.",
		Structure: Structure{Sections: []string{
			"Overview", "Prerequisites", "Installation", "Configuration",
			"Usage", "Examples", "Troubleshooting", "FAQ",
		}},
		IsPremium: true,
	},
	{
		ID:             "template-api-docs",
		Name:           "API Documentation",
		Category:       "Technical",
		Description:    "API endpoint documentation",
		PromptTemplate: "Document the API for {endpoint}. Include request/response examples, parameters, and errors.",
		Structure: Structure{Sections: []string{
			"Endpoint Overview", "Authentication", "Parameters",
			"Request Example", "Response Example", "Error Codes",
		}},
		IsPremium: true,
	},
	{
		ID:             "template-seo-pillar",
		Name:           "SEO Pillar Page",
		Category:       "SEO",
		Description:    "Comprehensive pillar page for topic clusters",
		PromptTemplate: "Create a pillar page about {topic}. Cover all aspects comprehensively with links to subtopics.",
		Structure: Structure{Sections: []string{
			"Introduction", "Definition", "Importance", "How It Works",
			"Types/Categories", "Best Practices", "Tools", "Case Studies",
			"Future Trends", "Conclusion",
		}},
		IsPremium: true,
	},
	{
		ID:             "template-local-seo",
		Name:           "Local SEO Page",
		Category:       "SEO",
		Description:    "Location-based service page",
		PromptTemplate: "Write a local SEO page for {service} in {location}. Include local keywords and area-specific content.",
		Structure: Structure{Sections: []string{
			"Introduction", "Services Offered", "Why Choose Us",
			"Service Areas", "Testimonials", "Contact/CTA",
		}},
	},
}
