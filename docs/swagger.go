package docs

// @title nichefinder API
// @version 1.0
// @description Business-niche recommendations generated from an entrepreneurial quiz profile.

// @BasePath /
// @schemes http https
