package simulator

// playerShim recreates the control surface of the embedded player
// inside the script runtime. Behavior is deliberately shallow: calls
// mutate local fields so that getters and playerInfo stay coherent,
// but nothing actually plays.
const playerShim = `
var player = {
	state: -1,
	volume: 100,
	muted: false,
	playbackRate: 1,
	availableRates: [0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2],
	videoId: null,
	playlist: null,
	playlistId: null,
	playlistIndex: -1,
	currentTime: 0,
	duration: 0,
	loadedFraction: 0,
	loop: false,
	shuffle: false,
	videoInfoVisible: false,
	destroyed: false,

	_state: function(code) {
		this.state = code;
		__emit("onStateChange", code);
	},

	playVideo: function() { this._state(1); },
	pauseVideo: function() { this._state(2); },
	stopVideo: function() { this._state(-1); },
	seekTo: function(seconds, allowSeekAhead) { this.currentTime = seconds; },

	loadVideoById: function(params) {
		this.videoId = params.videoId;
		this.playlist = null;
		this.playlistId = null;
		this.playlistIndex = -1;
		this.currentTime = params.startSeconds || 0;
		this._state(1);
	},
	cueVideoById: function(params) {
		this.videoId = params.videoId;
		this.playlist = null;
		this.playlistId = null;
		this.playlistIndex = -1;
		this.currentTime = params.startSeconds || 0;
		this._state(5);
	},
	loadPlaylist: function(params) {
		this._setList(params);
		this._state(1);
	},
	cuePlaylist: function(params) {
		this._setList(params);
		this._state(5);
	},
	_setList: function(params) {
		if (params.playlist) {
			this.playlist = params.playlist;
			this.playlistId = null;
		} else {
			this.playlist = [];
			this.playlistId = params.list;
		}
		this.playlistIndex = params.index || 0;
		this.videoId = this.playlist.length > 0 ? this.playlist[this.playlistIndex] : null;
		this.currentTime = params.startSeconds || 0;
	},

	nextVideo: function() {
		if (this.playlist && this.playlistIndex < this.playlist.length - 1) {
			this.playlistIndex++;
			this.videoId = this.playlist[this.playlistIndex];
		}
	},
	previousVideo: function() {
		if (this.playlist && this.playlistIndex > 0) {
			this.playlistIndex--;
			this.videoId = this.playlist[this.playlistIndex];
		}
	},
	playVideoAt: function(index) {
		if (this.playlist && index >= 0 && index < this.playlist.length) {
			this.playlistIndex = index;
			this.videoId = this.playlist[index];
			this._state(1);
		}
	},
	getPlaylist: function() { return this.playlist; },
	getPlaylistIndex: function() { return this.playlistIndex; },
	getPlaylistId: function() { return this.playlistId; },
	setLoop: function(loop) { this.loop = loop; },
	setShuffle: function(shuffle) { this.shuffle = shuffle; },

	mute: function() { this.muted = true; },
	unMute: function() { this.muted = false; },
	isMuted: function() { return this.muted; },
	getVolume: function() { return this.volume; },
	setVolume: function(volume) { this.volume = volume; },

	getCurrentTime: function() { return this.currentTime; },
	getDuration: function() { return this.duration; },
	getVideoLoadedFraction: function() { return this.loadedFraction; },
	getPlaybackRate: function() { return this.playbackRate; },
	setPlaybackRate: function(rate) {
		this.playbackRate = rate;
		__emit("onPlaybackRateChange", rate);
	},
	getAvailablePlaybackRates: function() { return this.availableRates; },
	getPlayerState: function() { return this.state; },

	getVideoUrl: function() {
		return "https://www.youtube.com/watch?v=" + this.videoId;
	},
	getVideoEmbedCode: function() {
		return '<iframe src="https://www.youtube.com/embed/' + this.videoId + '"></iframe>';
	},

	showVideoInfo: function() { this.videoInfoVisible = true; },
	hideVideoInfo: function() { this.videoInfoVisible = false; },
	isVideoInfoVisible: function() { return this.videoInfoVisible; },

	echo: function(value) { return value; },
	destroy: function() { this.destroyed = true; }
};

Object.defineProperty(player, "playerInfo", {
	get: function() {
		return {
			videoData: {
				video_id: this.videoId === null ? "" : this.videoId,
				author: "",
				title: ""
			},
			currentTime: this.currentTime,
			duration: this.duration,
			videoLoadedFraction: this.loadedFraction,
			volume: this.volume,
			muted: this.muted,
			playbackRate: this.playbackRate,
			playbackQuality: "auto",
			videoUrl: this.videoId === null ? "" : this.getVideoUrl(),
			videoEmbedCode: this.videoId === null ? "" : this.getVideoEmbedCode(),
			playlistId: this.playlistId,
			playlistIndex: this.playlist === null ? null : this.playlistIndex
		};
	}
});
`
