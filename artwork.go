package backup

import (
	"github.com/mbrakken/murfie-backup/internal/flac"
	"github.com/mbrakken/murfie-backup/internal/types"
)

// Container is a decoded FLAC file. See flac.Container.
type Container = flac.Container

// StreamInfo is the STREAMINFO block.
type StreamInfo = flac.StreamInfo

// VorbisComment is the VORBIS_COMMENT block.
type VorbisComment = flac.VorbisComment

// Picture is a PICTURE block.
type Picture = flac.Picture

// Application is an APPLICATION block.
type Application = flac.Application

// Padding is a PADDING block.
type Padding = flac.Padding

// RawBlock is a block kept as its original bytes.
type RawBlock = flac.RawBlock

// PictureType is the purpose of an embedded picture.
type PictureType = types.PictureType

// Re-export all picture type constants
const (
	PictureOther             = types.PictureOther
	PictureIcon              = types.PictureIcon
	PictureOtherIcon         = types.PictureOtherIcon
	PictureFrontCover        = types.PictureFrontCover
	PictureBackCover         = types.PictureBackCover
	PictureLeaflet           = types.PictureLeaflet
	PictureMedia             = types.PictureMedia
	PictureLeadArtist        = types.PictureLeadArtist
	PictureArtist            = types.PictureArtist
	PictureConductor         = types.PictureConductor
	PictureBand              = types.PictureBand
	PictureComposer          = types.PictureComposer
	PictureLyricist          = types.PictureLyricist
	PictureRecordingLocation = types.PictureRecordingLocation
	PictureDuringRecording   = types.PictureDuringRecording
	PictureDuringPerformance = types.PictureDuringPerformance
	PictureVideoCapture      = types.PictureVideoCapture
	PictureBrightFish        = types.PictureBrightFish
	PictureIllustration      = types.PictureIllustration
	PictureBandLogotype      = types.PictureBandLogotype
	PicturePublisherLogotype = types.PicturePublisherLogotype
)
