package asset

// DefaultConfig is the demo's built-in TOML configuration
const DefaultConfig = `

# === Fonts ===
# The built-in "cp437-mono" font is always registered.
# Image atlases are added with:
# [[font]]
# id = "px437"
# path = "assets/px437_8x8.png"
# grid = [16, 16]

# === Terminals ===

[[terminal]]
name = "hello"
size = [24, 8]
position = [0.0, 0.0]
depth = 0.0
pivot = "center"
scaling = "world"
border = "single"
border_fg = "#ffffff"
border_bg = "#000000"
fg = "#ffffff"
bg = "#000000"
bg_clip_color = "#000000"
font = "cp437-mono"

[[terminal.text]]
at = [0, 0]
pivot = "center"
text = "Hello world!"
fg = "#32cd32"

[[terminal.text]]
at = [1, 0]
pivot = "top_left"
text = "space: swap font"
fg = "#808080"
`
