package catalog

// builtinEntries is the fallback class table, matching the 44 classes the
// bundled model was trained on. Summaries are deliberately conservative:
// chemical names and dosages belong to local extension services.
var builtinEntries = map[int]Entry{
	0: {
		Name:    "American Bollworm on Cotton",
		Summary: "Scout twice weekly; hand-pick larvae on small plots and use pheromone traps. Spray only past the economic threshold.",
		Details: "Install 4-5 pheromone traps per acre to monitor moth activity. Encourage natural enemies (Trichogramma, chrysopids). Avoid repeat sprays of the same insecticide group to delay resistance.",
	},
	1: {
		Name:    "Anthracnose on Cotton",
		Summary: "Remove and destroy infected bolls and debris; use certified disease-free seed and rotate away from cotton.",
		Details: "The fungus survives on crop residue, so deep-plough or burn debris after harvest. Seed treatment with a recommended fungicide before sowing reduces carry-over.",
	},
	2: {
		Name:    "Army worm",
		Summary: "Flood or till field borders to expose larvae; apply bait or a recommended larvicide in the evening when larvae feed.",
	},
	3: {
		Name:    "Bacterial Blight in Rice",
		Summary: "Drain the field, avoid excess nitrogen, and plant resistant varieties next season.",
		Details: "Do not clip seedling tips at transplanting. Remove infected stubble and volunteer plants, and keep bunds weed-free to cut inoculum.",
	},
	4: {
		Name:    "Brown Spot on Rice",
		Summary: "Correct potassium and silicon deficiency; treat seed before sowing and apply a recommended fungicide at first spots.",
	},
	5: {
		Name:    "Common Rust on Maize",
		Summary: "Plant tolerant hybrids; a foliar fungicide pays only when rust arrives before tasseling.",
	},
	6: {
		Name:    "Cotton Aphid",
		Summary: "Conserve ladybird beetles and lacewings; spot-spray with a selective aphicide only on heavily infested patches.",
	},
	7: {
		Name:    "Flag Smut on Wheat",
		Summary: "Use certified treated seed and avoid sowing into soil that carried smut last season.",
	},
	8: {
		Name:    "Gray Leaf Spot on Maize",
		Summary: "Rotate out of maize for a season and bury residue; choose hybrids with partial resistance.",
	},
	9: {
		Name:    "Healthy Cotton",
		Summary: "No disease detected. Keep monitoring weekly, especially after rain.",
	},
	10: {
		Name:    "Healthy Maize",
		Summary: "No disease detected. Keep monitoring weekly, especially after rain.",
	},
	11: {
		Name:    "Healthy Wheat",
		Summary: "No disease detected. Keep monitoring weekly, especially after rain.",
	},
	12: {
		Name:    "Leaf Curl on Cotton",
		Summary: "Control whitefly, the virus vector; rogue out curled plants early and avoid late sowing.",
	},
	13: {
		Name:    "Leaf Smut on Rice",
		Summary: "Usually minor. Balance nitrogen and remove heavily smutted leaves; no spray is normally justified.",
	},
	14: {
		Name:    "Mosaic on Sugarcane",
		Summary: "Plant virus-free setts from a certified nursery and rogue out mosaic-marked stools.",
	},
	15: {
		Name:    "Pink Bollworm on Cotton",
		Summary: "Terminate the crop on time and destroy residue to break the cycle; use pheromone traps for timing sprays.",
		Details: "Avoid extending the season with late irrigation. Community-wide residue destruction matters more than any single field's spray program.",
	},
	16: {
		Name:    "Red Rot on Sugarcane",
		Summary: "Uproot and burn affected clumps; never take seed cane from an infected field.",
		Details: "Hot-water treatment of setts (50°C for 2 hours) before planting controls sett-borne infection. Rotate with a non-host for one season where the disease is established.",
	},
	17: {
		Name:    "Red Rust on Sugarcane",
		Summary: "Improve drainage and air movement; strip and destroy the worst leaves.",
	},
	18: {
		Name:    "Rice Blast",
		Summary: "Split nitrogen applications, keep the field flooded at tillering, and spray a recommended fungicide at neck emergence if lesions appear.",
	},
	19: {
		Name:    "Healthy Rice",
		Summary: "No disease detected. Keep monitoring weekly, especially after rain.",
	},
	20: {
		Name:    "Healthy Sugarcane",
		Summary: "No disease detected. Keep monitoring monthly through the grand growth phase.",
	},
	21: {
		Name:    "Tungro on Rice",
		Summary: "Control green leafhopper, the vector; remove infected hills and synchronize planting with neighbors.",
	},
	22: {
		Name:    "Brown Rust on Wheat",
		Summary: "Grow resistant varieties; spray a triazole-based fungicide at first pustules on the flag leaf.",
	},
	23: {
		Name:    "Wheat Stem Fly",
		Summary: "Sow on time — early sowing escapes peak fly activity; destroy stubble after harvest.",
	},
	24: {
		Name:    "Wheat Aphid",
		Summary: "Natural enemies usually suffice; spray only if aphids exceed ten per tiller before flowering.",
	},
	25: {
		Name:    "Black Rust on Wheat",
		Summary: "Grow resistant varieties and eliminate barberry near fields; act fast with a fungicide if pustules spread to stems.",
	},
	26: {
		Name:    "Leaf Blight on Wheat",
		Summary: "Rotate crops and treat seed; a single fungicide spray at flag-leaf emergence protects yield.",
	},
	27: {
		Name:    "Wheat Mite",
		Summary: "Irrigate to break drought stress that favors mites; spot-treat field edges where infestations start.",
	},
	28: {
		Name:    "Powdery Mildew on Wheat",
		Summary: "Avoid dense sowing and excess nitrogen; sulfur or a systemic fungicide at first white patches.",
	},
	29: {
		Name:    "Scab on Wheat",
		Summary: "Do not plant wheat after maize without burying residue; time fungicide at early flowering if rain threatens.",
	},
	30: {
		Name:    "Yellow Rust on Wheat",
		Summary: "Scout early in cool, wet weather; spray at the first stripe and repeat per label if the season stays cool.",
		Details: "Yellow rust spreads fastest at 10-15°C under drizzle. Border rows show it first — check them when checking is cheap.",
	},
	31: {
		Name:    "Wilt on Cotton",
		Summary: "No rescue treatment exists in-season; plant resistant varieties and rotate with non-host cereals.",
	},
	32: {
		Name:    "Yellow Rust on Sugarcane",
		Summary: "Strip affected leaves and improve potassium nutrition; replant with a tolerant variety if recurring.",
	},
	33: {
		Name:    "Boll Rot on Cotton",
		Summary: "Open the canopy by avoiding excess nitrogen; control bollworm entry wounds that let rot in.",
	},
	34: {
		Name:    "Bollworm on Cotton",
		Summary: "Scout squares and bolls twice weekly; spray only past the economic threshold and rotate chemistries.",
	},
	35: {
		Name:    "Cotton Mealy Bug",
		Summary: "Remove alternate host weeds; release Aenasius parasitoids where available and spot-spray colonies.",
	},
	36: {
		Name:    "Cotton Whitefly",
		Summary: "Use yellow sticky traps; avoid broad-spectrum sprays that kill its natural enemies.",
	},
	37: {
		Name:    "Ear Rot on Maize",
		Summary: "Harvest early at high moisture and dry fast; do not feed visibly molded grain to livestock.",
	},
	38: {
		Name:    "Fall Armyworm on Maize",
		Summary: "Check whorls for fresh frass; apply granules into the whorl rather than blanket sprays.",
		Details: "Egg masses are laid on leaves near the whorl — crushing them during scouting is effective on small plots. Bio-pesticides based on NPV or Bt work best on young larvae.",
	},
	39: {
		Name:    "Stem Borer on Maize",
		Summary: "Release Trichogramma cards at knee height; destroy stubble after harvest to kill overwintering larvae.",
	},
	40: {
		Name:    "Grasshopper on Rice",
		Summary: "Keep bunds clean of grassy weeds where eggs are laid; bait along field edges at dusk.",
	},
	41: {
		Name:    "Grassy Shoot on Sugarcane",
		Summary: "Rogue out grassy stools immediately; take seed cane only from disease-free nurseries.",
	},
	42: {
		Name:    "Thrips on Cotton",
		Summary: "Seedlings usually outgrow damage; treat seed before sowing in fields with a thrips history.",
	},
	43: {
		Name:    "Sheath Blight on Rice",
		Summary: "Widen spacing and drain periodically; spray the lower canopy, not the top, if lesions climb.",
	},
}
