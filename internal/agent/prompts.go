package agent

// Personas for the designer/developer conversation.
const (
	DesignerSystem = "You are an innovative game designer focused on creating " +
		"entirely original gameplay mechanics. Never suggest mechanics from " +
		"existing games - avoid card games, board games, or any traditional " +
		"game formats. Instead, create novel interaction patterns and unique " +
		"rule systems that have never been seen before. Keep suggestions " +
		"simple and implementable, but make sure they're completely original. " +
		"Focus on one clear idea at a time. If an idea seems similar to an " +
		"existing game, discard it and generate something more innovative. " +
		"Keep responses under 3 sentences when possible."

	DeveloperSystem = "You are a creative Go developer who specializes in " +
		"implementing novel game mechanics in terminal user interfaces. Your " +
		"role is to find innovative technical solutions for unique gameplay " +
		"ideas, without falling back on traditional game programming " +
		"patterns. When implementing features, avoid using common game " +
		"mechanics or standard solutions - instead, create fresh approaches " +
		"to match the original game concepts. Suggest specific, simple code " +
		"approaches while pointing out potential challenges. Keep technical " +
		"suggestions clear and concise, but always prioritize supporting " +
		"truly original gameplay mechanics. Keep responses under 3 sentences " +
		"when possible."

	conceptSystem = "You are a creative game design expert who specializes " +
		"in generating detailed game concepts with a focus on mechanics and " +
		"visual elements."

	developSystem = "You are an expert game developer specializing in " +
		"terminal games written in Go. Generate complete, working game code " +
		"that follows best practices and implements the specified concept."
)

// conceptPrompt asks for a strict JSON game description.
const conceptPrompt = `Given the game concept "%s", generate a detailed game description in JSON format.
Focus only on gameplay mechanics and screen info, no story elements.
The JSON should follow this structure:
{
    "gameTitle": "Unique name for the game",
    "genre": "Main genre of the game",
    "description": "Brief overview of the game concept",
    "coreMechanics": {},
    "features": {
        "gameElements": {}
    },
    "progression": {},
    "visualStyle": {
        "theme": "Overall visual theme",
        "artStyle": "Specific art style description",
        "animations": {}
    },
    "uniqueSellingPoints": []
}

Fill in the empty objects with concrete mechanics, rules and interactions.
Please ensure the JSON is properly formatted and focuses on concrete gameplay
and visual elements rather than narrative elements.`

// developPrompt asks for a runnable implementation of a concept.
const developPrompt = `Given this game concept in JSON format:
%s

Create a complete implementation of the game as a single-file Go terminal
program. The implementation should:
1. Follow the core mechanics and features described in the concept
2. Render to the terminal and read keyboard input
3. Include all necessary types and functions
4. Have proper game states (menu, playing, game over)
5. Include comments explaining the code
6. Handle the event loop and game loop
7. Include proper error handling and cleanup
8. Use plain characters for all visuals, no external assets

The code should be complete and runnable. Include all necessary imports and
constants. Focus on implementing the core mechanics first, then add visual
polish and additional features.

Return ONLY the Go code, properly formatted and ready to be saved as main.go.`

// combinePrompt merges two concept documents into a hybrid.
const combinePrompt = `Create a new game concept that combines elements from these two concepts.

First concept:
%s

Second concept:
%s`
