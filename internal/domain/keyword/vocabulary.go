package keyword

// domainVocabulary is the curated term list that biases extraction toward
// recognizable resume and job-description terminology. Multi-word entries are
// matched as substrings of the lowercased text; single-word entries against
// the filtered token pool.
var domainVocabulary = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
	"php", "swift", "kotlin", "scala", "r", "matlab",

	// Web technologies
	"react", "angular", "vue", "nextjs", "next.js", "nodejs", "node.js", "express",
	"django", "flask", "fastapi", "spring", "asp.net", "html", "css", "sass",
	"tailwind", "bootstrap", "webpack", "vite",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
	"dynamodb", "oracle", "sqlite", "nosql", "firebase",

	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github",
	"terraform", "ansible", "ci/cd", "devops", "linux", "unix",

	// Data science and ML
	"machine learning", "deep learning", "nlp", "computer vision", "data science",
	"tensorflow", "pytorch", "scikit-learn", "keras", "pandas", "numpy",
	"matplotlib", "seaborn", "jupyter", "spark", "hadoop", "ai", "artificial intelligence",

	// Mobile
	"android", "ios", "react native", "flutter", "xamarin",

	// Other technologies
	"rest api", "graphql", "microservices", "api", "git", "agile", "scrum",
	"jira", "testing", "unit testing", "selenium", "jest", "pytest",

	// Soft skills
	"leadership", "communication", "teamwork", "problem solving", "analytical",
	"project management", "collaboration",
}
