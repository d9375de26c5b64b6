package catalog

// curated holds accurate names for well-known identifiers. It takes
// precedence over the synthesized fallback entries.
var curated = map[string]Place{
	"Africa/Cairo":                   {CityName: "Cairo", CountryName: "Egypt", CountryCode: "EG"},
	"Africa/Casablanca":              {CityName: "Casablanca", CountryName: "Morocco", CountryCode: "MA"},
	"Africa/Johannesburg":            {CityName: "Johannesburg", CountryName: "South Africa", CountryCode: "ZA"},
	"Africa/Lagos":                   {CityName: "Lagos", CountryName: "Nigeria", CountryCode: "NG"},
	"Africa/Nairobi":                 {CityName: "Nairobi", CountryName: "Kenya", CountryCode: "KE"},
	"America/Anchorage":              {CityName: "Anchorage", CountryName: "United States", CountryCode: "US"},
	"America/Argentina/Buenos_Aires": {CityName: "Buenos Aires", CountryName: "Argentina", CountryCode: "AR"},
	"America/Bogota":                 {CityName: "Bogota", CountryName: "Colombia", CountryCode: "CO"},
	"America/Caracas":                {CityName: "Caracas", CountryName: "Venezuela", CountryCode: "VE"},
	"America/Chicago":                {CityName: "Chicago", CountryName: "United States", CountryCode: "US"},
	"America/Denver":                 {CityName: "Denver", CountryName: "United States", CountryCode: "US"},
	"America/Halifax":                {CityName: "Halifax", CountryName: "Canada", CountryCode: "CA"},
	"America/Havana":                 {CityName: "Havana", CountryName: "Cuba", CountryCode: "CU"},
	"America/Lima":                   {CityName: "Lima", CountryName: "Peru", CountryCode: "PE"},
	"America/Los_Angeles":            {CityName: "Los Angeles", CountryName: "United States", CountryCode: "US"},
	"America/Mexico_City":            {CityName: "Mexico City", CountryName: "Mexico", CountryCode: "MX"},
	"America/New_York":               {CityName: "New York", CountryName: "United States", CountryCode: "US"},
	"America/Phoenix":                {CityName: "Phoenix", CountryName: "United States", CountryCode: "US"},
	"America/Santiago":               {CityName: "Santiago", CountryName: "Chile", CountryCode: "CL"},
	"America/Sao_Paulo":              {CityName: "Sao Paulo", CountryName: "Brazil", CountryCode: "BR"},
	"America/St_Johns":               {CityName: "St. John's", CountryName: "Canada", CountryCode: "CA"},
	"America/Toronto":                {CityName: "Toronto", CountryName: "Canada", CountryCode: "CA"},
	"America/Vancouver":              {CityName: "Vancouver", CountryName: "Canada", CountryCode: "CA"},
	"Asia/Almaty":                    {CityName: "Almaty", CountryName: "Kazakhstan", CountryCode: "KZ"},
	"Asia/Baghdad":                   {CityName: "Baghdad", CountryName: "Iraq", CountryCode: "IQ"},
	"Asia/Baku":                      {CityName: "Baku", CountryName: "Azerbaijan", CountryCode: "AZ"},
	"Asia/Bangkok":                   {CityName: "Bangkok", CountryName: "Thailand", CountryCode: "TH"},
	"Asia/Colombo":                   {CityName: "Colombo", CountryName: "Sri Lanka", CountryCode: "LK"},
	"Asia/Dhaka":                     {CityName: "Dhaka", CountryName: "Bangladesh", CountryCode: "BD"},
	"Asia/Dubai":                     {CityName: "Dubai", CountryName: "United Arab Emirates", CountryCode: "AE"},
	"Asia/Ho_Chi_Minh":               {CityName: "Ho Chi Minh City", CountryName: "Vietnam", CountryCode: "VN"},
	"Asia/Hong_Kong":                 {CityName: "Hong Kong", CountryName: "Hong Kong", CountryCode: "HK"},
	"Asia/Jakarta":                   {CityName: "Jakarta", CountryName: "Indonesia", CountryCode: "ID"},
	"Asia/Jerusalem":                 {CityName: "Jerusalem", CountryName: "Israel", CountryCode: "IL"},
	"Asia/Kabul":                     {CityName: "Kabul", CountryName: "Afghanistan", CountryCode: "AF"},
	"Asia/Karachi":                   {CityName: "Karachi", CountryName: "Pakistan", CountryCode: "PK"},
	"Asia/Kathmandu":                 {CityName: "Kathmandu", CountryName: "Nepal", CountryCode: "NP"},
	"Asia/Kolkata":                   {CityName: "Mumbai", CountryName: "India", CountryCode: "IN"},
	"Asia/Kuala_Lumpur":              {CityName: "Kuala Lumpur", CountryName: "Malaysia", CountryCode: "MY"},
	"Asia/Manila":                    {CityName: "Manila", CountryName: "Philippines", CountryCode: "PH"},
	"Asia/Riyadh":                    {CityName: "Riyadh", CountryName: "Saudi Arabia", CountryCode: "SA"},
	"Asia/Seoul":                     {CityName: "Seoul", CountryName: "South Korea", CountryCode: "KR"},
	"Asia/Shanghai":                  {CityName: "Shanghai", CountryName: "China", CountryCode: "CN"},
	"Asia/Singapore":                 {CityName: "Singapore", CountryName: "Singapore", CountryCode: "SG"},
	"Asia/Taipei":                    {CityName: "Taipei", CountryName: "Taiwan", CountryCode: "TW"},
	"Asia/Tashkent":                  {CityName: "Tashkent", CountryName: "Uzbekistan", CountryCode: "UZ"},
	"Asia/Tehran":                    {CityName: "Tehran", CountryName: "Iran", CountryCode: "IR"},
	"Asia/Tokyo":                     {CityName: "Tokyo", CountryName: "Japan", CountryCode: "JP"},
	"Asia/Yangon":                    {CityName: "Yangon", CountryName: "Myanmar", CountryCode: "MM"},
	"Atlantic/Azores":                {CityName: "Azores", CountryName: "Portugal", CountryCode: "PT"},
	"Atlantic/Reykjavik":             {CityName: "Reykjavik", CountryName: "Iceland", CountryCode: "IS"},
	"Australia/Adelaide":             {CityName: "Adelaide", CountryName: "Australia", CountryCode: "AU"},
	"Australia/Brisbane":             {CityName: "Brisbane", CountryName: "Australia", CountryCode: "AU"},
	"Australia/Darwin":               {CityName: "Darwin", CountryName: "Australia", CountryCode: "AU"},
	"Australia/Melbourne":            {CityName: "Melbourne", CountryName: "Australia", CountryCode: "AU"},
	"Australia/Perth":                {CityName: "Perth", CountryName: "Australia", CountryCode: "AU"},
	"Australia/Sydney":               {CityName: "Sydney", CountryName: "Australia", CountryCode: "AU"},
	"Europe/Amsterdam":               {CityName: "Amsterdam", CountryName: "Netherlands", CountryCode: "NL"},
	"Europe/Athens":                  {CityName: "Athens", CountryName: "Greece", CountryCode: "GR"},
	"Europe/Berlin":                  {CityName: "Berlin", CountryName: "Germany", CountryCode: "DE"},
	"Europe/Brussels":                {CityName: "Brussels", CountryName: "Belgium", CountryCode: "BE"},
	"Europe/Dublin":                  {CityName: "Dublin", CountryName: "Ireland", CountryCode: "IE"},
	"Europe/Helsinki":                {CityName: "Helsinki", CountryName: "Finland", CountryCode: "FI"},
	"Europe/Istanbul":                {CityName: "Istanbul", CountryName: "Turkey", CountryCode: "TR"},
	"Europe/Lisbon":                  {CityName: "Lisbon", CountryName: "Portugal", CountryCode: "PT"},
	"Europe/London":                  {CityName: "London", CountryName: "United Kingdom", CountryCode: "GB"},
	"Europe/Madrid":                  {CityName: "Madrid", CountryName: "Spain", CountryCode: "ES"},
	"Europe/Moscow":                  {CityName: "Moscow", CountryName: "Russia", CountryCode: "RU"},
	"Europe/Oslo":                    {CityName: "Oslo", CountryName: "Norway", CountryCode: "NO"},
	"Europe/Paris":                   {CityName: "Paris", CountryName: "France", CountryCode: "FR"},
	"Europe/Prague":                  {CityName: "Prague", CountryName: "Czechia", CountryCode: "CZ"},
	"Europe/Rome":                    {CityName: "Rome", CountryName: "Italy", CountryCode: "IT"},
	"Europe/Stockholm":               {CityName: "Stockholm", CountryName: "Sweden", CountryCode: "SE"},
	"Europe/Vienna":                  {CityName: "Vienna", CountryName: "Austria", CountryCode: "AT"},
	"Europe/Warsaw":                  {CityName: "Warsaw", CountryName: "Poland", CountryCode: "PL"},
	"Europe/Zurich":                  {CityName: "Zurich", CountryName: "Switzerland", CountryCode: "CH"},
	"Pacific/Auckland":               {CityName: "Auckland", CountryName: "New Zealand", CountryCode: "NZ"},
	"Pacific/Fiji":                   {CityName: "Suva", CountryName: "Fiji", CountryCode: "FJ"},
	"Pacific/Honolulu":               {CityName: "Honolulu", CountryName: "United States", CountryCode: "US"},
}
