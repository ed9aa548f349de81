package download

// Package download is the install stub behind the "download" control on game
// cards. Requests are recorded and reported to the UI, nothing is fetched or
// installed.
