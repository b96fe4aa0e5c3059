package services

import "strings"

// ChatService is the canned-response helpdesk bot. Replies are keyword
// matched; check order matters because later rules use broader keywords.
type ChatService struct{}

func NewChatService() *ChatService {
	return &ChatService{}
}

// Reply picks a scripted answer for the message.
func (s *ChatService) Reply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	if strings.Contains(msg, "how") && (strings.Contains(msg, "play") || strings.Contains(msg, "work")) {
		return "To play on GameBattles, create an account, find or create a match, and compete against other players. After the match, report your results!"
	}

	if strings.Contains(msg, "create") && strings.Contains(msg, "match") {
		return "To create a match, click 'Create Match' in the navigation menu, select your game, mode, maps, and your team name. Then wait for an opponent to join!"
	}

	if strings.Contains(msg, "set up") || strings.Contains(msg, "setup") {
		switch {
		case strings.Contains(msg, "modern warfare 2") || strings.Contains(msg, "mw2"):
			return "To set up a Modern Warfare 2 match: 1) Click 'Create Match' in the menu, 2) Select 'Modern Warfare 2' as the game, 3) Choose your game mode (Search and Destroy, CTF, Domination, or TDM), 4) Pick your maps (Afghan, Terminal, Rust, etc.), 5) Enter your team name and click 'Create Match'. Then wait for an opponent to join!"
		case strings.Contains(msg, "modern warfare 3") || strings.Contains(msg, "mw3"):
			return "To set up a Modern Warfare 3 match: 1) Click 'Create Match', 2) Select 'Modern Warfare 3', 3) Choose your game mode, 4) Pick maps like Dome, Hardhat, or Arkaden, 5) Enter your team name and create the match!"
		case strings.Contains(msg, "black ops 2") || strings.Contains(msg, "bo2"):
			return "To set up a Black Ops 2 match: 1) Click 'Create Match', 2) Select 'Black Ops 2', 3) Choose your game mode, 4) Pick maps like Raid, Standoff, or Hijacked, 5) Enter your team name and you're ready!"
		case strings.Contains(msg, "black ops") || strings.Contains(msg, "bo"):
			return "To set up a Black Ops match: 1) Click 'Create Match', 2) Select 'Black Ops', 3) Choose your game mode, 4) Pick maps like Nuketown, Firing Range, or Summit, 5) Enter your team name and create!"
		case strings.Contains(msg, "modern warfare") || strings.Contains(msg, "mw"):
			return "To set up a Modern Warfare match: 1) Click 'Create Match' in the navigation menu, 2) Select your Modern Warfare game (MW2 or MW3), 3) Choose a game mode, 4) Select your maps, 5) Enter your team name and create the match. An opponent will join soon!"
		}
		return "To set up a match, click 'Create Match' in the menu, select your game (Modern Warfare 2, Black Ops, MW3, or Black Ops 2), choose your mode and maps, enter your team name, and create! What game would you like to play?"
	}

	if strings.Contains(msg, "map") {
		return "Each game has its own set of maps! Select your game when creating a match to see available maps. You can choose between 1, 3, or 5 maps per match."
	}

	if strings.Contains(msg, "report") && strings.Contains(msg, "result") {
		return "After completing a match, go to the match details page and click 'Report Results'. Enter the scores for each map. If your opponent disputes, you'll need to provide proof."
	}

	if strings.Contains(msg, "leaderboard") || strings.Contains(msg, "rank") {
		return "Check out the Leaderboard to see top players! Rankings are based on wins and win rate. Keep winning matches to climb the ranks!"
	}

	if strings.Contains(msg, "game") && (strings.Contains(msg, "support") || strings.Contains(msg, "available")) {
		return "We currently support Modern Warfare 2, Black Ops, Modern Warfare 3, and Black Ops 2. Each game has authentic maps and supports multiple game modes!"
	}

	if strings.Contains(msg, "join") && strings.Contains(msg, "match") {
		return "To join an open match, go to 'Find Matches', browse available matches, and click on one to join. Enter your team name and you're ready to compete!"
	}

	if strings.Contains(msg, "win") || strings.Contains(msg, "lose") {
		return "Your wins and losses are tracked on your profile. They're updated automatically when match results are reported. Build your legacy!"
	}

	if strings.Contains(msg, "mode") {
		return "Available game modes include Search and Destroy, Capture the Flag, Domination, and Team Deathmatch. Choose your preferred mode when creating a match!"
	}

	if strings.Contains(msg, "help") || strings.Contains(msg, "?") {
		return "I can help you with: creating matches, finding opponents, reporting results, understanding game modes, checking the leaderboard, and more! What would you like to know?"
	}

	if strings.Contains(msg, "hello") || strings.Contains(msg, "hi") || strings.Contains(msg, "hey") {
		return "Hey there, competitor! 👋 Welcome to GameBattles! How can I assist you today?"
	}

	if strings.Contains(msg, "thank") {
		return "You're welcome! Good luck in your matches! 🎮"
	}

	return "I'm here to help you with GameBattles! Ask me about creating matches, finding opponents, game modes, maps, reporting results, or the leaderboard. What would you like to know?"
}
