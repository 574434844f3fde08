package geo

// City is one entry in the static known-city table.
type City struct {
	Lat    float64
	Lng    float64
	Region string // Two-letter state code
}

// cityTable is keyed by normalized (lowercased, trimmed) city name.
var cityTable = map[string]City{
	"new york":       {40.7128, -74.0060, "NY"},
	"los angeles":    {34.0522, -118.2437, "CA"},
	"chicago":        {41.8781, -87.6298, "IL"},
	"houston":        {29.7604, -95.3698, "TX"},
	"phoenix":        {33.4484, -112.0740, "AZ"},
	"philadelphia":   {39.9526, -75.1652, "PA"},
	"san antonio":    {29.4241, -98.4936, "TX"},
	"san diego":      {32.7157, -117.1611, "CA"},
	"dallas":         {32.7767, -96.7970, "TX"},
	"austin":         {30.2672, -97.7431, "TX"},
	"san francisco":  {37.7749, -122.4194, "CA"},
	"seattle":        {47.6062, -122.3321, "WA"},
	"denver":         {39.7392, -104.9903, "CO"},
	"boston":         {42.3601, -71.0589, "MA"},
	"washington":     {38.9072, -77.0369, "DC"},
	"nashville":      {36.1627, -86.7816, "TN"},
	"baltimore":      {39.2904, -76.6122, "MD"},
	"louisville":     {38.2527, -85.7585, "KY"},
	"milwaukee":      {43.0389, -87.9065, "WI"},
	"portland":       {45.5152, -122.6784, "OR"},
	"las vegas":      {36.1699, -115.1398, "NV"},
	"albuquerque":    {35.0844, -106.6504, "NM"},
	"tucson":         {32.2226, -110.9747, "AZ"},
	"sacramento":     {38.5816, -121.4944, "CA"},
	"kansas city":    {39.0997, -94.5786, "MO"},
	"atlanta":        {33.7490, -84.3880, "GA"},
	"omaha":          {41.2565, -95.9345, "NE"},
	"miami":          {25.7617, -80.1918, "FL"},
	"oakland":        {37.8044, -122.2712, "CA"},
	"minneapolis":    {44.9778, -93.2650, "MN"},
	"new orleans":    {29.9511, -90.0715, "LA"},
	"cleveland":      {41.4993, -81.6944, "OH"},
	"tampa":          {27.9506, -82.4572, "FL"},
	"pittsburgh":     {40.4406, -79.9959, "PA"},
	"cincinnati":     {39.1031, -84.5120, "OH"},
	"st. louis":      {38.6270, -90.1994, "MO"},
	"saint paul":     {44.9537, -93.0900, "MN"},
	"indianapolis":   {39.7684, -86.1581, "IN"},
	"columbus":       {39.9612, -82.9988, "OH"},
	"detroit":        {42.3314, -83.0458, "MI"},
	"memphis":        {35.1495, -90.0490, "TN"},
	"baton rouge":    {30.4515, -91.1871, "LA"},
	"salt lake city": {40.7608, -111.8910, "UT"},
	"buffalo":        {42.8864, -78.8784, "NY"},
	"providence":     {41.8240, -71.4128, "RI"},
	"hartford":       {41.7658, -72.6734, "CT"},
	"newark":         {40.7357, -74.1724, "NJ"},
	"charlotte":      {35.2271, -80.8431, "NC"},
	"raleigh":        {35.7796, -78.6382, "NC"},
	"richmond":       {37.5407, -77.4360, "VA"},
	"orlando":        {28.5383, -81.3792, "FL"},
	"jacksonville":   {30.3322, -81.6557, "FL"},
	"oklahoma city":  {35.4676, -97.5164, "OK"},
	"wichita":        {37.6872, -97.3301, "KS"},
	"fresno":         {36.7378, -119.7871, "CA"},
	"el paso":        {31.7619, -106.4850, "TX"},
	"honolulu":       {21.3069, -157.8583, "HI"},
	"anchorage":      {61.2181, -149.9003, "AK"},
	"boise":          {43.6150, -116.2023, "ID"},
	"spokane":        {47.6588, -117.4260, "WA"},
}

// cityAliases redirects common shorthand to canonical table keys.
var cityAliases = map[string]string{
	"nyc":           "new york",
	"new york city": "new york",
	"manhattan":     "new york",
	"brooklyn":      "new york",
	"la":            "los angeles",
	"philly":        "philadelphia",
	"sf":            "san francisco",
	"san fran":      "san francisco",
	"vegas":         "las vegas",
	"dc":            "washington",
	"washington dc": "washington",
	"nola":          "new orleans",
	"st louis":      "st. louis",
	"saint louis":   "st. louis",
	"st. paul":      "saint paul",
	"st paul":       "saint paul",
	"kc":            "kansas city",
	"slc":           "salt lake city",
	"okc":           "oklahoma city",
}
